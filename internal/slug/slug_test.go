package slug

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var safeSlug = regexp.MustCompile(`^[a-z0-9._-]+$`)

func TestDerive_Deterministic(t *testing.T) {
	inputs := []struct{ raw, base string }{
		{"/lab", "/"},
		{"/lab/workspaces/foo", "/"},
		{"/user/alice/lab/workspaces/foo", "/user/alice/"},
		{"", ""},
		{"ünïcödé/ワークスペース", "/"},
	}
	for _, in := range inputs {
		first := Derive(in.raw, in.base)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Derive(in.raw, in.base), "Derive(%q, %q) not stable", in.raw, in.base)
		}
	}
}

func TestDerive_FilesystemSafe(t *testing.T) {
	inputs := []string{
		"/lab",
		"/lab/workspaces/my workspace",
		"/lab/workspaces/../../etc/passwd",
		"/lab/workspaces/a:b\\c@d",
		"/lab/workspaces/%2F%2E%2E",
		"/lab/workspaces/\x00\x01",
		"/lab/workspaces/ＦＵＬＬ",
		"...",
		strings.Repeat("x", 500),
	}
	for _, raw := range inputs {
		got := Derive(raw, "/")
		require.Regexp(t, safeSlug, got, "Derive(%q)", raw)
		assert.NotContains(t, got, "/")
		assert.False(t, strings.HasPrefix(got, "."), "slug %q must not be hidden", got)
		assert.LessOrEqual(t, len(got), maxReadableLength+1+hashLength)
	}
}

func TestDerive_ReadablePart(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		base string
		want string
	}{
		{name: "page url", raw: "/lab", base: "/", want: "lab-"},
		{name: "named workspace", raw: "/lab/workspaces/foo", base: "/", want: "lab-workspaces-foo-"},
		{name: "base stripped", raw: "/user/alice/lab", base: "/user/alice", want: "lab-"},
		{name: "base with trailing slash", raw: "/user/alice/lab", base: "/user/alice/", want: "lab-"},
		{name: "nfkc folding", raw: "/lab/workspaces/ＦＯＯ", base: "/", want: "lab-workspaces-foo-"},
		{name: "empty", raw: "", base: "/", want: "default-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.raw, tt.base)
			assert.True(t, strings.HasPrefix(got, tt.want), "Derive(%q, %q) = %q, want prefix %q", tt.raw, tt.base, got, tt.want)
			assert.Len(t, got, len(tt.want)+hashLength)
		})
	}
}

func TestDerive_NoCollisionOnCase(t *testing.T) {
	a := Derive("/lab/workspaces/Foo", "/")
	b := Derive("/lab/workspaces/foo", "/")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a[:len(a)-hashLength], b[:len(b)-hashLength], "readable parts should match")
}

func TestDerive_BaseDisambiguates(t *testing.T) {
	// The same relative id under two mount points maps to different files.
	a := Derive("/lab", "/user/alice/")
	b := Derive("/lab", "/user/bob/")
	assert.NotEqual(t, a, b)

	// An id that already carries the base prefix matches the relative form.
	assert.Equal(t, Derive("/user/alice/lab", "/user/alice/"), Derive("/lab", "/user/alice/"))
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/lab/workspaces/foo", "lab-workspaces-foo"},
		{"My Workspace", "my-workspace"},
		{"a//b", "a-b"},
		{"--x--", "x"},
		{".hidden", "hidden"},
		{"v1.2", "v1.2"},
		{"???", "default"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in), "sanitizeName(%q)", tt.in)
	}
}
