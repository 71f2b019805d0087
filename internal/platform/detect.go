package platform

import (
	"path/filepath"
	"runtime"
)

// OS represents a supported operating system.
type OS string

const (
	MacOS   OS = "darwin"
	Linux   OS = "linux"
	Windows OS = "windows"
	Unknown OS = "unknown"
)

// Detect returns the current operating system.
func Detect() OS {
	return fromGOOS(runtime.GOOS)
}

func fromGOOS(goos string) OS {
	switch goos {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	case "windows":
		return Windows
	default:
		return Unknown
	}
}

// UserDataDir returns the per-user data directory for the given OS.
// getenv is consulted for XDG_DATA_HOME and APPDATA.
//
//	macOS:   ~/Library/Lab
//	Windows: %APPDATA%\lab
//	other:   $XDG_DATA_HOME/lab or ~/.local/share/lab
func UserDataDir(os OS, home string, getenv func(string) string) string {
	switch os {
	case MacOS:
		return filepath.Join(home, "Library", "Lab")
	case Windows:
		if appData := getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "lab")
		}
		return filepath.Join(home, "AppData", "Roaming", "lab")
	default:
		if xdg := getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "lab")
		}
		return filepath.Join(home, ".local", "share", "lab")
	}
}
