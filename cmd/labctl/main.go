package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeanhaley32/labctl/internal/config"
	"github.com/jeanhaley32/labctl/internal/constants"
	"github.com/jeanhaley32/labctl/internal/logging"
)

var version = "0.1.0"

// app holds the state shared by all commands of one invocation.
type app struct {
	env       config.Env
	overrides config.Overrides
	logLevel  *logging.Level
	logFormat string

	cfg *config.Config
}

func newApp(env config.Env) *app {
	return &app{
		env:      env,
		logLevel: logging.NewLevel(slog.LevelWarn),
	}
}

// config resolves the configuration on first use so that commands which do
// not need it (version) work without a home directory.
func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.Resolve(a.env, a.overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve configuration: %w", err)
	}
	a.cfg = cfg
	return cfg, nil
}

// setup runs before every command: it merges ./.env into the environment
// snapshot and installs the logger in the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	env, err := a.env.WithDotEnv(".env")
	if err != nil {
		return err
	}
	a.env = env

	flags := cmd.Flags()
	if !flags.Changed("log-level") {
		if v := a.env.Get(constants.EnvLogLevel); v != "" {
			if err := a.logLevel.Set(v); err != nil {
				return fmt.Errorf("%s: %w", constants.EnvLogLevel, err)
			}
		}
	}
	if !flags.Changed("log-format") {
		if v := a.env.Get(constants.EnvLogFormat); v != "" {
			a.logFormat = v
		}
	}

	logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{Format: a.logFormat, Level: a.logLevel})
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger.With("command", cmd.CommandPath())))
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "labctl",
		Short:             "Administer the lab application server",
		Long:              "Inspect lab server paths and import or export workspaces stored on disk.",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.overrides.ConfigFile, "config", "", "Config file, YAML or JSON (env "+constants.EnvConfigFile+")")
	pf.StringVar(&a.overrides.BaseURL, "base-url", "", "URL path the server is mounted under (env "+constants.EnvBaseURL+")")
	pf.StringVar(&a.overrides.PageURL, "page-url", "", "Id of the default workspace (env "+constants.EnvPageURL+")")
	pf.StringVar(&a.overrides.WorkspacesDir, "workspaces-dir", "", "Workspaces directory (env "+constants.EnvWorkspacesDir+")")
	pf.Var(a.logLevel, "log-level", "Log level: debug, info, warn, error (env "+constants.EnvLogLevel+")")
	pf.StringVar(&a.logFormat, "log-format", logging.FormatHuman, "Log format: human, json (env "+constants.EnvLogFormat+")")

	for _, row := range commandTable() {
		rootCmd.AddCommand(a.build(row))
	}
	return rootCmd
}

func main() {
	rootCmd := newRootCmd(newApp(config.OSEnv()))
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
