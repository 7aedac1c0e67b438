package routes

import (
	"net/http"

	"smarttodo/backend/ai"
	"smarttodo/backend/handlers"
)

// RegisterContextRoutes registers the daily-context routes
func RegisterContextRoutes(mux *http.ServeMux, engine *ai.Engine) {
	mux.HandleFunc("POST /context", handlers.CreateContextHandler(engine))
	mux.HandleFunc("GET /context", handlers.GetContextsHandler)
}
