package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jeanhaley32/labctl/internal/constants"
	"github.com/jeanhaley32/labctl/internal/terminal"
	"github.com/jeanhaley32/labctl/internal/workspace"
)

// service builds the workspace service from the resolved configuration.
func (a *app) service() (*workspace.Service, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	urls := workspace.URLs{
		BaseURL:       cfg.BaseURL,
		PageURL:       cfg.PageURL,
		WorkspacesURL: cfg.WorkspacesURL,
	}
	return workspace.NewService(urls, workspace.NewStore(cfg.WorkspacesDir, constants.WorkspaceExtension)), nil
}

func runWorkspaceExport(a *app, cmd *cobra.Command, args []string) error {
	// Reject extra arguments before touching the configuration.
	if len(args) > 1 {
		return &workspace.UsageError{Message: "too many arguments were provided for workspace export"}
	}

	svc, err := a.service()
	if err != nil {
		return err
	}

	data, err := svc.Export(cmd.Context(), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}

func runWorkspaceImport(a *app, cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &workspace.UsageError{Message: "one argument is required for workspace import"}
	}

	svc, err := a.service()
	if err != nil {
		return err
	}

	path, err := svc.Import(cmd.Context(), args)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved workspace: %s\n", path)
	return nil
}

func runWorkspaceList(a *app, cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("invalid json flag: %w", err)
	}

	svc, err := a.service()
	if err != nil {
		return err
	}

	entries, err := svc.List(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		if entries == nil {
			entries = []workspace.Entry{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "No workspaces in %s\n", svc.Store().Dir())
		return nil
	}

	return writeWorkspaceTable(out, entries, idColumnWidth(out, entries))
}

// idColumnWidth returns how many runes of the ID column fit on the terminal
// behind out, or 0 for no limit.
func idColumnWidth(out io.Writer, entries []workspace.Entry) int {
	f, ok := out.(*os.File)
	if !ok {
		return 0
	}
	width, ok := terminal.Width(f)
	if !ok {
		return 0
	}

	// Everything but the ID column: slug, size, timestamp and padding.
	rest := 0
	for _, e := range entries {
		if n := len(e.Slug); n > rest {
			rest = n
		}
	}
	rest += len("SIZE") + 8 + len("2006-01-02 15:04") + 3*2

	if avail := width - rest; avail > 8 {
		return avail
	}
	return 8
}

func writeWorkspaceTable(out io.Writer, entries []workspace.Entry, idWidth int) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSLUG\tSIZE\tMODIFIED")
	for _, e := range entries {
		id := e.ID
		if id == "" {
			id = "(unreadable)"
		}
		if idWidth > 0 {
			id = terminal.Truncate(id, idWidth)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", id, e.Slug, e.Size, e.ModTime.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func runWorkspaceSchema(a *app, cmd *cobra.Command, args []string) error {
	schema, err := workspace.Schema()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return err
}
