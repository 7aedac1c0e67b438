package routes

import (
	"net/http"

	"smarttodo/backend/ai"
)

// Register wires all application routes onto the mux. Handlers that run the
// engine receive it here; there is no package-level engine instance.
func Register(mux *http.ServeMux, engine *ai.Engine) {
	RegisterTaskRoutes(mux)
	RegisterCategoryRoutes(mux)
	RegisterContextRoutes(mux, engine)
	RegisterAIRoutes(mux, engine)
	RegisterSuggestionRoutes(mux)
}
