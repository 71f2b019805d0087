package constants

import "os"

// Workspace-related constants
const (
	// WorkspaceExtension is the file extension of stored workspace documents.
	WorkspaceExtension = ".lab-workspace"

	// DefaultBaseURL is the URL path the application is served under.
	DefaultBaseURL = "/"

	// DefaultPageURL is the logical identifier of the default workspace.
	DefaultPageURL = "/lab"

	// WorkspacesSegment is appended to the page URL to form the workspaces URL.
	WorkspacesSegment = "workspaces"
)

// Directory layout constants
const (
	// ConfigDirName is the per-user configuration directory under $HOME.
	ConfigDirName = ".lab"

	// LabSubdir groups lab-specific state inside the config and data directories.
	LabSubdir = "lab"

	// UserSettingsSubdir holds user settings under <configDir>/lab.
	UserSettingsSubdir = "user-settings"

	// WorkspacesSubdir holds workspace documents under <configDir>/lab.
	WorkspacesSubdir = "workspaces"

	// ConfigFileBase is the config file name without extension.
	ConfigFileBase = "labctl"
)

// Environment variable names
const (
	EnvBaseURL       = "LAB_BASE_URL"
	EnvPageURL       = "LAB_PAGE_URL"
	EnvAppDir        = "LAB_DIR"
	EnvSettingsDir   = "LAB_SETTINGS_DIR"
	EnvWorkspacesDir = "LAB_WORKSPACES_DIR"
	EnvConfigDir     = "LAB_CONFIG_DIR"
	EnvDataDir       = "LAB_DATA_DIR"
	EnvConfigFile    = "LAB_CONFIG"
	EnvLogLevel      = "LAB_LOG_LEVEL"
	EnvLogFormat     = "LAB_LOG_FORMAT"
)

// File permissions
const (
	// DirPermissions is the default permission mode for directories.
	DirPermissions os.FileMode = 0755

	// FilePermissions is the permission mode for workspace files.
	FilePermissions os.FileMode = 0644
)
