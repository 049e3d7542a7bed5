package controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/SaiNageswarS/gemini-notion-api/middleware"
	"github.com/SaiNageswarS/gemini-notion-api/model"
	"github.com/SaiNageswarS/gemini-notion-api/notion"
)

// RecentController returns entries created within a recency window.
type RecentController struct {
	aggregator *notion.Aggregator
}

func ProvideRecentController(aggregator *notion.Aggregator) *RecentController {
	return &RecentController{aggregator: aggregator}
}

func (rc *RecentController) HandleRecent(w http.ResponseWriter, r *http.Request) {
	days := notion.DefaultRecentDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			days = parsed
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := rc.aggregator.Recent(ctx, days)

	totalEntries := 0
	byDatabase := make(map[string]int, len(data))
	for databaseID, entries := range data {
		byDatabase[databaseID] = len(entries)
		totalEntries += len(entries)
	}

	writeJSON(w, http.StatusOK, model.RecentResponse{
		Days:         days,
		TotalEntries: totalEntries,
		ByDatabase:   byDatabase,
		Data:         data,
	})
}

func (rc *RecentController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/recent",
			Method:  http.MethodGet,
			Handler: middleware.CORS(rc.HandleRecent),
		},
	}
}
