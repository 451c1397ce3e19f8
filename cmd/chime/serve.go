// Package main provides the entry point for the chime CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/moon-mind/chime/internal/alarms"
	chimemcp "github.com/moon-mind/chime/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run chime as a Model Context Protocol (MCP) server over stdio.

This exposes alarm operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "chime": {
        "command": "chime",
        "args": ["serve"]
      }
    }
  }

Available tools: status, list_alarms, next_alarm, add_alarm, toggle_alarm, remove_alarm`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := alarms.NewDefaultStore()
			server := chimemcp.NewServer(buildVersion(), store)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
