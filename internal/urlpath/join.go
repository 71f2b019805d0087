// Package urlpath joins URL path segments the way the lab server does when it
// builds page and workspace URLs.
package urlpath

import "strings"

// Join joins pieces with exactly one "/" between them. A leading "/" on the
// first piece and a trailing "/" on the last piece are kept. Empty pieces are
// skipped. Unlike path.Join, "." and ".." are not resolved.
func Join(pieces ...string) string {
	var nonEmpty []string
	for _, p := range pieces {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) == 0 {
		return ""
	}

	first, last := nonEmpty[0], nonEmpty[len(nonEmpty)-1]
	if len(nonEmpty) == 1 {
		return first
	}

	trimmed := make([]string, 0, len(nonEmpty))
	for _, p := range nonEmpty {
		if p = strings.Trim(p, "/"); p != "" {
			trimmed = append(trimmed, p)
		}
	}
	result := strings.Join(trimmed, "/")
	if strings.HasPrefix(first, "/") {
		result = "/" + result
	}
	if strings.HasSuffix(last, "/") && result != "/" {
		result += "/"
	}
	return result
}

// HasPathPrefix reports whether p equals prefix or lies beneath it as a path.
func HasPathPrefix(p, prefix string) bool {
	if prefix == "" || p == prefix {
		return true
	}
	if strings.HasSuffix(prefix, "/") {
		return strings.HasPrefix(p, prefix)
	}
	return strings.HasPrefix(p, prefix+"/")
}
