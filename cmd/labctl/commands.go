package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// commandSpec is one row of the command table: a name, its help text, the
// flags it owns and the handler that runs it. Nested rows form subcommand
// groups.
type commandSpec struct {
	Use     string
	Aliases []string
	Short   string
	Long    string
	Example string
	Args    cobra.PositionalArgs
	Flags   func(fs *pflag.FlagSet)
	Run     func(a *app, cmd *cobra.Command, args []string) error
	Sub     []commandSpec
}

// commandTable lists every labctl command.
func commandTable() []commandSpec {
	return []commandSpec{
		{
			Use:     "workspace",
			Aliases: []string{"workspaces"},
			Short:   "Import or export a workspace",
			Args:    cobra.NoArgs,
			Sub: []commandSpec{
				{
					Use:   "export [name]",
					Short: "Export a workspace",
					Long: `Print a stored workspace as JSON on standard output.

Without a name the default workspace (the page URL) is exported. A name is
joined onto the workspaces URL. A workspace that has never been imported, or
whose file cannot be read, is printed as an empty workspace.`,
					Example: "  labctl workspace export\n  labctl workspace export my-layout > my-layout.json",
					Args:    cobra.ArbitraryArgs,
					Run:     runWorkspaceExport,
				},
				{
					Use:   "import <file>",
					Short: "Import a workspace",
					Long: `Validate a workspace JSON file and store it in the workspaces directory,
replacing any stored workspace with the same id. The path written is printed.`,
					Example: "  labctl workspace import my-layout.json",
					Args:    cobra.ArbitraryArgs,
					Run:     runWorkspaceImport,
				},
				{
					Use:   "list",
					Short: "List stored workspaces",
					Args:  cobra.NoArgs,
					Flags: func(fs *pflag.FlagSet) {
						fs.Bool("json", false, "Print the list as JSON")
					},
					Run: runWorkspaceList,
				},
				{
					Use:   "schema",
					Short: "Print the JSON Schema of a workspace document",
					Args:  cobra.NoArgs,
					Run:   runWorkspaceSchema,
				},
			},
		},
		{
			Use:     "paths",
			Aliases: []string{"path"},
			Short:   "Print the configured directories",
			Long: `Print the application, user settings and workspaces directories.

The application directory can be set with LAB_DIR, the user settings
directory with LAB_SETTINGS_DIR and the workspaces directory with
LAB_WORKSPACES_DIR. Otherwise they live under the lab config and data
directories.`,
			Args: cobra.NoArgs,
			Run:  runPaths,
		},
		{
			Use:   "version",
			Short: "Show version information",
			Args:  cobra.NoArgs,
			Run:   runVersion,
		},
	}
}

// build turns a table row into a cobra command bound to a.
func (a *app) build(row commandSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:     row.Use,
		Aliases: row.Aliases,
		Short:   row.Short,
		Long:    row.Long,
		Example: row.Example,
		Args:    row.Args,
	}
	if row.Flags != nil {
		row.Flags(cmd.Flags())
	}
	if row.Run != nil {
		run := row.Run
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, args)
		}
	}
	for _, sub := range row.Sub {
		cmd.AddCommand(a.build(sub))
	}
	return cmd
}
