package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/chartfmt/chartfmt/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the chartfmt MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var songbookPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start chartfmt MCP server (stdio)",
		Long:  "Start the chartfmt MCP server using stdio transport. This lets AI assistants score charts, list issues, and apply fixes in a songbook directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if songbookPath == "" {
				songbookPath = "."
			}
			s := mcpadapter.NewChartFmtMCPServer(songbookPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&songbookPath, "path", "", "Songbook directory (defaults to current working directory)")

	return cmd
}
