package handlers

import (
	"net/http"
	"strconv"

	"smarttodo/backend/config"
	"smarttodo/backend/supabase"
	"smarttodo/backend/types"

	"github.com/google/uuid"
)

func GetSuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	minConfidence := 0.0
	if s := q.Get("min_confidence"); s != "" {
		var err error
		minConfidence, err = strconv.ParseFloat(s, 64)
		if err != nil || minConfidence < 0 || minConfidence > 1 {
			writeError(w, "Invalid min_confidence value", http.StatusBadRequest)
			return
		}
	}

	daysBack := 0
	if s := q.Get("days_back"); s != "" {
		var err error
		daysBack, err = strconv.Atoi(s)
		if err != nil || daysBack < 1 {
			writeError(w, "Invalid days_back value", http.StatusBadRequest)
			return
		}
	}

	supabaseClient, _, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	suggestions, err := supabase.GetSuggestions(supabaseClient, minConfidence, daysBack)
	if err != nil {
		config.Logger.Error("Failed to fetch suggestions:", err)
		writeError(w, "Failed to fetch suggestions", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetSuggestionsResponse{
		Success:     true,
		Suggestions: suggestions,
	})
}

// AcceptSuggestionHandler turns a draft into a real task and marks the
// draft accepted.
func AcceptSuggestionHandler(w http.ResponseWriter, r *http.Request) {
	suggestionID := r.URL.Query().Get("id")
	if suggestionID == "" {
		writeError(w, "Missing suggestion ID", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(suggestionID); err != nil {
		config.Logger.Error("Invalid suggestion ID format:", err)
		writeError(w, "Invalid suggestion ID", http.StatusBadRequest)
		return
	}

	supabaseClient, _, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	suggestion, err := supabase.GetSuggestion(supabaseClient, suggestionID)
	if err != nil {
		config.Logger.Error("Failed to fetch suggestion:", err)
		writeError(w, "Suggestion not found", http.StatusNotFound)
		return
	}
	if suggestion.Accepted {
		writeError(w, "Suggestion already accepted", http.StatusConflict)
		return
	}

	task := types.Task{
		Title:       suggestion.Title,
		Description: suggestion.Description,
		Priority:    suggestion.SuggestedPriority,
		Deadline:    suggestion.SuggestedDeadline,
	}
	created, err := supabase.InsertAndReturnTask(supabaseClient, task)
	if err != nil {
		config.Logger.Error("Failed to create task from suggestion:", err)
		writeError(w, "Failed to create task", http.StatusInternalServerError)
		return
	}

	if err := supabase.MarkSuggestionAccepted(supabaseClient, suggestionID); err != nil {
		config.Logger.Warn("Failed to mark suggestion accepted:", err)
	}

	writeJSON(w, http.StatusCreated, types.AcceptSuggestionResponse{
		Success: true,
		Message: "Task created successfully",
		TaskID:  created.ID,
	})
}
