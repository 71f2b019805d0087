package platform

import (
	"path/filepath"
	"testing"
)

func TestFromGOOS(t *testing.T) {
	tests := map[string]OS{
		"darwin":  MacOS,
		"linux":   Linux,
		"windows": Windows,
		"plan9":   Unknown,
	}
	for goos, want := range tests {
		if got := fromGOOS(goos); got != want {
			t.Errorf("fromGOOS(%q) = %v, want %v", goos, got, want)
		}
	}
}

func TestUserDataDir(t *testing.T) {
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }
	home := "/home/user"

	tests := []struct {
		name string
		os   OS
		vars map[string]string
		want string
	}{
		{name: "macOS", os: MacOS, want: filepath.Join(home, "Library", "Lab")},
		{name: "linux default", os: Linux, want: filepath.Join(home, ".local", "share", "lab")},
		{name: "linux xdg", os: Linux, vars: map[string]string{"XDG_DATA_HOME": "/xdg"}, want: filepath.Join("/xdg", "lab")},
		{name: "windows appdata", os: Windows, vars: map[string]string{"APPDATA": "/appdata"}, want: filepath.Join("/appdata", "lab")},
		{name: "windows fallback", os: Windows, want: filepath.Join(home, "AppData", "Roaming", "lab")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env = tt.vars
			if got := UserDataDir(tt.os, home, getenv); got != tt.want {
				t.Errorf("UserDataDir() = %v, want %v", got, tt.want)
			}
		})
	}
}
