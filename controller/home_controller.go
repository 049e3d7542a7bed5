package controller

import (
	"html/template"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/SaiNageswarS/gemini-notion-api/middleware"
	"github.com/SaiNageswarS/gemini-notion-api/templates"
	"go.uber.org/zap"
)

type HomeController struct {
}

func ProvideHomeController() *HomeController {
	return &HomeController{}
}

// HandleHome serves the endpoint index page.
func (hc *HomeController) HandleHome(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.ParseFS(templates.FS, "home.html")
	if err != nil {
		logger.Error("Failed to parse home template", zap.Error(err))
		http.Error(w, "Failed to load home page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if err := tmpl.Execute(w, nil); err != nil {
		logger.Error("Failed to execute home template", zap.Error(err))
		// Note: Can't call http.Error here as headers may already be written
		return
	}
}

func (hc *HomeController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/",
			Method:  http.MethodGet,
			Handler: middleware.CORS(hc.HandleHome),
		},
	}
}
