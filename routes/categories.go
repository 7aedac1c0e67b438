package routes

import (
	"net/http"

	"smarttodo/backend/handlers"
)

// RegisterCategoryRoutes registers all category-related routes
func RegisterCategoryRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", handlers.GetCategoriesHandler)
	mux.HandleFunc("POST /categories", handlers.CreateCategoryHandler)
}
