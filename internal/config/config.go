// Package config resolves labctl settings from an environment snapshot,
// an optional config file and command-line overrides.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/jeanhaley32/labctl/internal/constants"
	"github.com/jeanhaley32/labctl/internal/platform"
	"github.com/jeanhaley32/labctl/internal/urlpath"
)

// Env is a snapshot of the process environment.
type Env struct {
	Vars map[string]string
	OS   platform.OS
}

// OSEnv captures the current process environment.
func OSEnv() Env {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return Env{Vars: vars, OS: platform.Detect()}
}

// Get returns the value of key, or "" if unset.
func (e Env) Get(key string) string {
	return e.Vars[key]
}

// WithDotEnv returns a copy of e with the variables from the .env file at
// path added. Variables already set in e win. A missing file is not an error.
func (e Env) WithDotEnv(path string) (Env, error) {
	fileVars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return e, nil
		}
		return e, fmt.Errorf("failed to read %s: %w", path, err)
	}

	merged := make(map[string]string, len(e.Vars)+len(fileVars))
	for k, v := range fileVars {
		merged[k] = v
	}
	for k, v := range e.Vars {
		merged[k] = v
	}
	return Env{Vars: merged, OS: e.OS}, nil
}

// Overrides are values given explicitly on the command line. Empty fields
// are ignored.
type Overrides struct {
	ConfigFile    string
	BaseURL       string
	PageURL       string
	WorkspacesDir string
}

// File is the on-disk config file, in YAML or JSON (comments allowed).
type File struct {
	BaseURL       string `yaml:"base_url" json:"base_url"`
	PageURL       string `yaml:"page_url" json:"page_url"`
	WorkspacesURL string `yaml:"workspaces_url" json:"workspaces_url"`
	AppDir        string `yaml:"app_dir" json:"app_dir"`
	SettingsDir   string `yaml:"settings_dir" json:"settings_dir"`
	WorkspacesDir string `yaml:"workspaces_dir" json:"workspaces_dir"`
}

// Config is the resolved configuration.
type Config struct {
	BaseURL       string
	PageURL       string
	WorkspacesURL string

	ConfigDir     string
	AppDir        string
	SettingsDir   string
	WorkspacesDir string

	// ConfigFile is the config file that was loaded, or "" if none.
	ConfigFile string
}

// Resolve builds a Config. Each value is taken from, in priority order:
// overrides, env, the config file, then the built-in default.
func Resolve(env Env, o Overrides) (*Config, error) {
	home := env.Get("HOME")
	if home == "" {
		home = env.Get("USERPROFILE")
	}

	configDir := env.Get(constants.EnvConfigDir)
	if configDir == "" {
		if home == "" {
			return nil, fmt.Errorf("cannot determine home directory: set HOME or %s", constants.EnvConfigDir)
		}
		configDir = filepath.Join(home, constants.ConfigDirName)
	}

	cfgPath, required := first(o.ConfigFile, env.Get(constants.EnvConfigFile)), true
	if cfgPath == "" {
		cfgPath, required = findConfigFile(configDir), false
	}
	var file File
	if cfgPath != "" {
		loaded, err := LoadFile(cfgPath)
		if err != nil {
			if required || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
			cfgPath = ""
		} else {
			file = *loaded
		}
	}

	dataDir := env.Get(constants.EnvDataDir)
	if dataDir == "" {
		dataDir = platform.UserDataDir(env.OS, home, env.Get)
	}
	labConfigDir := filepath.Join(configDir, constants.LabSubdir)

	cfg := &Config{
		BaseURL:       first(o.BaseURL, env.Get(constants.EnvBaseURL), file.BaseURL, constants.DefaultBaseURL),
		PageURL:       first(o.PageURL, env.Get(constants.EnvPageURL), file.PageURL, constants.DefaultPageURL),
		ConfigDir:     configDir,
		AppDir:        first(env.Get(constants.EnvAppDir), file.AppDir, filepath.Join(dataDir, constants.LabSubdir)),
		SettingsDir:   first(env.Get(constants.EnvSettingsDir), file.SettingsDir, filepath.Join(labConfigDir, constants.UserSettingsSubdir)),
		WorkspacesDir: first(o.WorkspacesDir, env.Get(constants.EnvWorkspacesDir), file.WorkspacesDir, filepath.Join(labConfigDir, constants.WorkspacesSubdir)),
		ConfigFile:    cfgPath,
	}
	cfg.WorkspacesURL = first(file.WorkspacesURL, urlpath.Join(cfg.PageURL, constants.WorkspacesSegment))

	return cfg, nil
}

// LoadFile reads a config file. Files ending in .json are parsed as JSON
// with comments and trailing commas; anything else as YAML. Unknown keys are
// rejected.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
		return &f, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &f, nil
}

// findConfigFile returns the first labctl.{yaml,yml,json} in dir, or "".
func findConfigFile(dir string) string {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		p := filepath.Join(dir, constants.ConfigFileBase+ext)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// first returns the first non-empty value.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
