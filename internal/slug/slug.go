// Package slug derives the on-disk storage key of a workspace from its
// logical URL identity.
package slug

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/text/unicode/norm"

	"github.com/jeanhaley32/labctl/internal/urlpath"
)

// Pre-compiled regexes for sanitization (compiled once at package init)
var (
	pathSepRegex     = regexp.MustCompile(`[/:\\@\s]+`)
	unsafeCharRegex  = regexp.MustCompile(`[^a-z0-9._-]`)
	multiHyphenRegex = regexp.MustCompile(`-+`)
)

const (
	// maxReadableLength caps the human-readable part of a slug.
	maxReadableLength = 64

	// hashLength is the number of hex characters in the collision suffix.
	hashLength = 8

	// emptyName replaces a readable part that sanitizes to nothing.
	emptyName = "default"
)

// Derive returns the slug for raw served under baseURL.
//
// The readable part is raw with the baseURL prefix removed, sanitized to
// [a-z0-9._-]. A short BLAKE3 hash of the full logical path is appended so
// ids that only differ in dropped characters or case still map to different
// files. Derive is pure: the same inputs always produce the same slug.
func Derive(raw, baseURL string) string {
	shortcut, full := raw, raw
	if baseURL != "" && baseURL != "/" && urlpath.HasPathPrefix(raw, baseURL) {
		shortcut = strings.TrimPrefix(raw, baseURL)
	} else {
		full = urlpath.Join(baseURL, raw)
	}

	return sanitizeName(shortcut) + "-" + shortHash(full)
}

// sanitizeName converts a string to a filesystem-safe name.
func sanitizeName(name string) string {
	name = norm.NFKC.String(name)
	name = strings.ToLower(name)

	// Replace path separators and special characters with hyphens
	name = pathSepRegex.ReplaceAllString(name, "-")

	// Remaining unsafe characters become hyphens rather than vanishing
	name = unsafeCharRegex.ReplaceAllString(name, "-")

	name = multiHyphenRegex.ReplaceAllString(name, "-")

	// A leading dot would hide the file.
	name = strings.Trim(name, "-.")

	if len(name) > maxReadableLength {
		name = name[:maxReadableLength]
		name = strings.TrimRight(name, "-.")
	}

	if name == "" {
		name = emptyName
	}

	return name
}

func shortHash(s string) string {
	sum := blake3.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:hashLength]
}
