package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeanhaley32/labctl/internal/constants"
	"github.com/jeanhaley32/labctl/internal/platform"
	"github.com/jeanhaley32/labctl/internal/state"
)

func runPaths(a *app, cmd *cobra.Command, args []string) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}

	envState := state.NewDetector(cfg.AppDir, cfg.SettingsDir, cfg.WorkspacesDir, constants.WorkspaceExtension).Detect()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Application directory:   %s%s\n", cfg.AppDir, missingNote(envState.AppDir))
	fmt.Fprintf(out, "User Settings directory: %s%s\n", cfg.SettingsDir, missingNote(envState.SettingsDir))
	if envState.WorkspacesDir.Exists {
		fmt.Fprintf(out, "Workspaces directory:    %s (%d stored)\n", cfg.WorkspacesDir, envState.WorkspaceCount)
	} else {
		fmt.Fprintf(out, "Workspaces directory:    %s%s\n", cfg.WorkspacesDir, missingNote(envState.WorkspacesDir))
	}
	if cfg.ConfigFile != "" {
		fmt.Fprintf(out, "Config file:             %s\n", cfg.ConfigFile)
	}
	return nil
}

func missingNote(d state.DirState) string {
	if d.Exists {
		return ""
	}
	return " (not created)"
}

func runVersion(a *app, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "labctl version %s\n", version)
	fmt.Fprintf(out, "Platform: %s\n", platform.Detect())
	return nil
}
