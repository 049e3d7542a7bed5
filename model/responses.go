package model

import "github.com/SaiNageswarS/gemini-notion-api/notion"

// ChatRequest is the incoming chat message body.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse echoes the message with the generated answer.
type ChatResponse struct {
	Message        string `json:"message"`
	Response       string `json:"response"`
	UsedNotionData bool   `json:"used_notion_data"`
}

// StatusResponse summarizes connectivity and configuration.
type StatusResponse struct {
	Status           string `json:"status"`
	NotionConnected  bool   `json:"notion_connected"`
	GeminiConfigured bool   `json:"gemini_configured"`
	Databases        int    `json:"databases"`
	TotalEntries     int    `json:"total_entries"`
}

// SearchResponse carries the first matches for a keyword.
type SearchResponse struct {
	Keyword string             `json:"keyword"`
	Matches int                `json:"matches"`
	Results []notion.SearchHit `json:"results"`
}

// RecentResponse carries entries created within the requested window.
type RecentResponse struct {
	Days         int                       `json:"days"`
	TotalEntries int                       `json:"total_entries"`
	ByDatabase   map[string]int            `json:"by_database"`
	Data         map[string][]notion.Entry `json:"data"`
}

// ErrorResponse is the body of 4xx/5xx replies.
type ErrorResponse struct {
	Error string `json:"error"`
}
