package controller

import (
	"context"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/SaiNageswarS/gemini-notion-api/middleware"
	"github.com/SaiNageswarS/gemini-notion-api/model"
	"github.com/SaiNageswarS/gemini-notion-api/notion"
	"go.uber.org/zap"
)

// maxSearchResults caps how many hits a search response carries.
const maxSearchResults = 10

// SearchController handles keyword search across the configured databases.
type SearchController struct {
	aggregator *notion.Aggregator
}

func ProvideSearchController(aggregator *notion.Aggregator) *SearchController {
	return &SearchController{aggregator: aggregator}
}

func (sc *SearchController) HandleSearch(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		writeError(w, http.StatusBadRequest, "Please provide a 'keyword' parameter")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	hits := sc.aggregator.Search(ctx, keyword)
	logger.Info("Keyword search completed", zap.String("keyword", keyword), zap.Int("matches", len(hits)))

	results := hits
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	if results == nil {
		results = []notion.SearchHit{}
	}

	writeJSON(w, http.StatusOK, model.SearchResponse{
		Keyword: keyword,
		Matches: len(hits),
		Results: results,
	})
}

func (sc *SearchController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/search",
			Method:  http.MethodGet,
			Handler: middleware.CORS(sc.HandleSearch),
		},
	}
}
