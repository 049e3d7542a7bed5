// Package mcp exposes the aggregation engine as MCP tools so MCP-speaking
// clients can query the same Notion data the chat endpoint grounds on.
package mcp

import (
	"net/http"

	"github.com/SaiNageswarS/gemini-notion-api/notion"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server wraps an mcp.Server over the aggregator.
type Server struct {
	aggregator *notion.Aggregator
	server     *mcp.Server
}

// NewServer creates the MCP server and registers its tools.
func NewServer(aggregator *notion.Aggregator) *Server {
	impl := &mcp.Implementation{
		Name:    "gemini-notion-api",
		Version: Version,
	}

	s := &Server{
		aggregator: aggregator,
		server:     mcp.NewServer(impl, nil),
	}
	s.registerTools()
	return s
}

// HTTPHandler returns a streamable-HTTP handler for mounting the server on a
// route of the main API.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}
