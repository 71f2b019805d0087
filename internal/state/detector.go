package state

import (
	"os"
	"strings"
)

// DirState describes one configured directory.
type DirState struct {
	Path   string
	Exists bool
}

// EnvironmentState is the on-disk state behind a labctl configuration.
type EnvironmentState struct {
	AppDir         DirState
	SettingsDir    DirState
	WorkspacesDir  DirState
	WorkspaceCount int
}

// Detector checks the state of the configured directories.
type Detector struct {
	appDir        string
	settingsDir   string
	workspacesDir string
	workspaceExt  string
}

// NewDetector creates a new state detector.
func NewDetector(appDir, settingsDir, workspacesDir, workspaceExt string) *Detector {
	return &Detector{
		appDir:        appDir,
		settingsDir:   settingsDir,
		workspacesDir: workspacesDir,
		workspaceExt:  workspaceExt,
	}
}

// Detect checks all configured directories.
func (d *Detector) Detect() *EnvironmentState {
	return &EnvironmentState{
		AppDir:         checkDir(d.appDir),
		SettingsDir:    checkDir(d.settingsDir),
		WorkspacesDir:  checkDir(d.workspacesDir),
		WorkspaceCount: d.countWorkspaces(),
	}
}

func checkDir(path string) DirState {
	info, err := os.Stat(path)
	return DirState{Path: path, Exists: err == nil && info.IsDir()}
}

// countWorkspaces counts visible workspace files; an unreadable directory
// counts as empty.
func (d *Detector) countWorkspaces() int {
	entries, err := os.ReadDir(d.workspacesDir)
	if err != nil {
		return 0
	}

	count := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if strings.HasSuffix(name, d.workspaceExt) {
			count++
		}
	}
	return count
}
