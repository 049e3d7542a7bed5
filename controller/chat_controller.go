package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/SaiNageswarS/gemini-notion-api/appconfig"
	"github.com/SaiNageswarS/gemini-notion-api/gemini"
	"github.com/SaiNageswarS/gemini-notion-api/middleware"
	"github.com/SaiNageswarS/gemini-notion-api/model"
	"github.com/SaiNageswarS/gemini-notion-api/notion"
	"github.com/SaiNageswarS/gemini-notion-api/prompt"
	"go.uber.org/zap"
)

// maxSearchContext caps how many hits are compressed into the chat prompt.
const maxSearchContext = 5

// ChatController answers chat messages with Gemini, grounded in Notion data
// when the message asks for it.
type ChatController struct {
	cfg        *appconfig.AppConfig
	aggregator *notion.Aggregator
	generator  gemini.Generator
}

func ProvideChatController(cfg *appconfig.AppConfig, aggregator *notion.Aggregator, generator *gemini.Client) *ChatController {
	return &ChatController{
		cfg:        cfg,
		aggregator: aggregator,
		generator:  generator,
	}
}

func (cc *ChatController) HandleChat(w http.ResponseWriter, r *http.Request) {
	if cc.cfg.GeminiAPIKey == "" {
		writeError(w, http.StatusInternalServerError, "GEMINI_API_KEY not configured")
		return
	}

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeError(w, http.StatusBadRequest, "Please provide a 'message' in JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	dataContext := cc.buildDataContext(ctx, req.Message)

	response, err := cc.generator.Generate(ctx, prompt.Build(dataContext, req.Message))
	if err != nil {
		logger.Error("Generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.ChatResponse{
		Message:        req.Message,
		Response:       response,
		UsedNotionData: dataContext != "",
	})
}

// buildDataContext runs the aggregation mode the message's intent asks for
// and compresses the result. An empty string means the prompt goes out
// ungrounded.
func (cc *ChatController) buildDataContext(ctx context.Context, message string) string {
	intent := prompt.Classify(message)

	switch {
	case intent.Recent:
		data := cc.aggregator.Recent(ctx, intent.Days)
		return prompt.RecentContext(intent.Days, data)
	case intent.SearchTerm != "":
		hits := cc.aggregator.Search(ctx, intent.SearchTerm)
		if len(hits) > maxSearchContext {
			hits = hits[:maxSearchContext]
		}
		return prompt.SearchContext(intent.SearchTerm, hits)
	default:
		return ""
	}
}

func (cc *ChatController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/chat",
			Method:  http.MethodPost,
			Handler: middleware.CORS(cc.HandleChat),
		},
		{
			// Preflight; the CORS middleware answers it with 204.
			Pattern: "/chat",
			Method:  http.MethodOptions,
			Handler: middleware.CORS(cc.HandleChat),
		},
	}
}
