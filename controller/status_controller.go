package controller

import (
	"context"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/SaiNageswarS/gemini-notion-api/appconfig"
	"github.com/SaiNageswarS/gemini-notion-api/middleware"
	"github.com/SaiNageswarS/gemini-notion-api/model"
	"github.com/SaiNageswarS/gemini-notion-api/notion"
)

// StatusController reports connectivity and configuration state.
type StatusController struct {
	cfg        *appconfig.AppConfig
	aggregator *notion.Aggregator
}

func ProvideStatusController(cfg *appconfig.AppConfig, aggregator *notion.Aggregator) *StatusController {
	return &StatusController{
		cfg:        cfg,
		aggregator: aggregator,
	}
}

func (sc *StatusController) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := sc.aggregator.CollectAll(ctx)

	totalEntries := 0
	for _, dump := range data {
		totalEntries += dump.Count
	}

	writeJSON(w, http.StatusOK, model.StatusResponse{
		Status:           "success",
		NotionConnected:  true,
		GeminiConfigured: sc.cfg.GeminiAPIKey != "",
		Databases:        len(data),
		TotalEntries:     totalEntries,
	})
}

func (sc *StatusController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/status",
			Method:  http.MethodGet,
			Handler: middleware.CORS(sc.HandleStatus),
		},
	}
}
