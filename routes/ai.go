package routes

import (
	"net/http"

	"smarttodo/backend/ai"
	"smarttodo/backend/handlers"
)

// RegisterAIRoutes registers the AI action and analytics routes
func RegisterAIRoutes(mux *http.ServeMux, engine *ai.Engine) {
	mux.HandleFunc("POST /ai/suggestions", handlers.AIActionsHandler(engine))
	mux.HandleFunc("GET /ai/analytics", handlers.AnalyticsHandler)
}
