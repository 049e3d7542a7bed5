package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/gemini-notion-api/model"
	"go.uber.org/zap"
)

// requestTimeout bounds one inbound request end to end, including the full
// pagination chain against Notion and the Gemini call.
const requestTimeout = 60 * time.Second

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
		// Note: Can't call http.Error here as headers may already be written
	}
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, model.ErrorResponse{Error: message})
}
