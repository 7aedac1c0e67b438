package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"smarttodo/backend/config"
	"smarttodo/backend/supabase"
	"smarttodo/backend/types"
)

func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	supabaseClient, _, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	categories, err := supabase.GetCategories(supabaseClient)
	if err != nil {
		config.Logger.Error("Failed to fetch categories:", err)
		writeError(w, "Failed to fetch categories", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetCategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var category types.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		config.Logger.Error("Failed to decode category JSON:", err)
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(category.Name) == "" {
		writeError(w, "Missing category name", http.StatusBadRequest)
		return
	}

	supabaseClient, _, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	created, err := supabase.InsertAndReturnCategory(supabaseClient, category)
	if err != nil {
		config.Logger.Error("Failed to save category:", err)
		writeError(w, "Failed to create category", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, types.CategoryResponse{
		Success:  true,
		Category: created,
	})
}
