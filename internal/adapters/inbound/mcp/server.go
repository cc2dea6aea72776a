package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewChartFmtMCPServer creates an MCP server with all chartfmt tools
// registered. songbookPath is the directory whose chart files the tools
// operate on.
func NewChartFmtMCPServer(songbookPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"chartfmt",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, songbookPath)

	return s
}
