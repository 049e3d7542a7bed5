package mcp

import (
	"context"

	"github.com/SaiNageswarS/gemini-notion-api/notion"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchInput is the input schema for the search_entries tool.
type SearchInput struct {
	Keyword string `json:"keyword" jsonschema:"the keyword to search entries for"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_entries tool.
type SearchOutput struct {
	Results []notion.SearchHit `json:"results"`
	Count   int                `json:"count"`
}

// RecentInput is the input schema for the recent_entries tool.
type RecentInput struct {
	Days int `json:"days,omitempty" jsonschema:"recency window in days (default 7)"`
}

// RecentOutput is the output schema for the recent_entries tool.
type RecentOutput struct {
	Days         int                       `json:"days"`
	TotalEntries int                       `json:"total_entries"`
	Data         map[string][]notion.Entry `json:"data"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_entries",
		Description: "Search all configured Notion databases for a keyword",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recent_entries",
		Description: "Get entries created within the last N days",
	}, s.handleRecent)
}

func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	hits := s.aggregator.Search(ctx, input.Keyword)
	count := len(hits)
	if len(hits) > limit {
		hits = hits[:limit]
	}
	if hits == nil {
		hits = []notion.SearchHit{}
	}

	return nil, SearchOutput{Results: hits, Count: count}, nil
}

func (s *Server) handleRecent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecentInput,
) (*mcp.CallToolResult, RecentOutput, error) {
	days := input.Days
	if days <= 0 {
		days = notion.DefaultRecentDays
	}

	data := s.aggregator.Recent(ctx, days)

	total := 0
	for _, entries := range data {
		total += len(entries)
	}

	return nil, RecentOutput{Days: days, TotalEntries: total, Data: data}, nil
}
