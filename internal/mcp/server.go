// ABOUTME: MCP server setup for the fuelcast engine.
// ABOUTME: Wraps the MCP server with pattern store, advisor, and storage.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prometheusfit/fuelcast/internal/nutrition"
	"github.com/prometheusfit/fuelcast/internal/pattern"
	"github.com/prometheusfit/fuelcast/internal/storage"
)

// Server wraps the MCP server with engine access.
type Server struct {
	mcpServer *mcp.Server
	patterns  *pattern.Store
	advisor   *nutrition.Advisor
	repo      storage.Repository
}

// NewServer creates a new MCP server over the engine components.
func NewServer(patterns *pattern.Store, advisor *nutrition.Advisor, repo storage.Repository) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fuelcast",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		patterns:  patterns,
		advisor:   advisor,
		repo:      repo,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
