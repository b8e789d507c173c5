// Package mcpserver exposes the table formatter as a Model Context Protocol
// tool so agents can align Markdown tables without spawning a process per
// document.
package mcpserver

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/salmonumbrella/ftb/internal/table"
)

// New builds the MCP server with the format_tables tool registered.
func New(version string) *server.MCPServer {
	srv := server.NewMCPServer("ftb", version, server.WithToolCapabilities(false))

	tool := mcp.NewTool("format_tables",
		mcp.WithDescription("Reformat Markdown tables in the given text so every table's columns are padded to uniform width. Non-table lines are returned unchanged."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Markdown text, possibly containing tables"),
		),
	)
	srv.AddTool(tool, handleFormatTables)

	return srv
}

func handleFormatTables(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(table.FormatDocument(text)), nil
}

// Serve runs srv over the given streams until ctx is canceled or the client
// disconnects.
func Serve(ctx context.Context, srv *server.MCPServer, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(srv).Listen(ctx, in, out)
}
