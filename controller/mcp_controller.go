package controller

import (
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/SaiNageswarS/gemini-notion-api/mcp"
	"github.com/SaiNageswarS/gemini-notion-api/notion"
)

// MCPController mounts the MCP streamable-HTTP endpoint on the API server.
type MCPController struct {
	handler http.Handler
}

func ProvideMCPController(aggregator *notion.Aggregator) *MCPController {
	return &MCPController{
		handler: mcp.NewServer(aggregator).HTTPHandler(),
	}
}

func (mc *MCPController) Routes() []server.Route {
	// Streamable HTTP uses POST for messages, GET for the event stream and
	// DELETE to end a session.
	methods := []string{http.MethodPost, http.MethodGet, http.MethodDelete}

	routes := make([]server.Route, 0, len(methods))
	for _, method := range methods {
		routes = append(routes, server.Route{
			Pattern: "/mcp",
			Method:  method,
			Handler: mc.handler.ServeHTTP,
		})
	}
	return routes
}
