package cmd

import (
	"github.com/spf13/cobra"

	"github.com/salmonumbrella/ftb/internal/mcpserver"
)

func newMCPCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the table formatter as an MCP tool over stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout.

The server exposes a single format_tables tool that takes Markdown text and
returns it with all tables aligned, so agents can format tables without
shelling out to ftb.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			srv := mcpserver.New(app.Version)
			return mcpserver.Serve(ctx, srv, stdinFromContext(ctx), stdoutFromContext(ctx))
		},
	}
}
