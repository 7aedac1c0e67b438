package routes

import (
	"net/http"

	"smarttodo/backend/handlers"
)

// RegisterSuggestionRoutes registers the task-suggestion routes
func RegisterSuggestionRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /suggestions", handlers.GetSuggestionsHandler)
	mux.HandleFunc("POST /suggestions/accept", handlers.AcceptSuggestionHandler)
}
