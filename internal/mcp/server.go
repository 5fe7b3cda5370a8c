// ABOUTME: MCP server setup for the workout store.
// ABOUTME: Wraps the MCP server with storage and coach access.
package mcp

import (
	"context"

	"github.com/harperreed/lift/internal/advice"
	"github.com/harperreed/lift/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage and coach access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	coach     advice.Provider
}

// NewServer creates a new MCP server with the given storage and coach.
func NewServer(repo storage.Repository, coach advice.Provider) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "lift",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		coach:     coach,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
