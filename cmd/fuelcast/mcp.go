// ABOUTME: CLI command that runs the MCP server over stdio.
// ABOUTME: Exposes the engine to MCP-compatible AI assistants.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prometheusfit/fuelcast/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol server",
	Long: `Run the MCP server over stdio.

Exposes workout lifecycle, meal logging, fueling advice, and recovery
tracking as MCP tools, plus the pattern and history as resources.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(patterns, advisor, repo)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
