package mcp

import (
	"context"
	"log/slog"

	"github.com/five82/htmlref/internal/browse"
	"github.com/five82/htmlref/internal/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server exposes the catalog to MCP clients.
type Server struct {
	server  *mcp.Server
	catalog *catalog.Catalog
	detail  *browse.Detail
	logger  *slog.Logger
}

// NewServer builds a server over c. A nil logger discards output.
func NewServer(c *catalog.Catalog, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		catalog: c,
		detail:  browse.NewDetail(c),
		logger:  logger,
	}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "htmlref",
			Version: version,
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
		},
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Serve runs the server over stdio until ctx is done or the client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("mcp server starting", "records", s.catalog.Len())
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
