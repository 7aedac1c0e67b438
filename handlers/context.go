package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"smarttodo/backend/ai"
	"smarttodo/backend/config"
	"smarttodo/backend/supabase"
	"smarttodo/backend/types"
)

// CreateContextHandler stores a context entry, runs the engine over it, and
// persists the resulting analysis and task suggestion drafts.
func CreateContextHandler(engine *ai.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry types.ContextEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			config.Logger.Error("Failed to decode context JSON:", err)
			writeError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(entry.Content) == "" {
			writeError(w, "Missing content", http.StatusBadRequest)
			return
		}
		if entry.ContextType == "" {
			entry.ContextType = config.ContextTypeUnknown
		}
		if !config.IsValid(entry.ContextType, config.ValidContextTypes) {
			writeError(w, "Invalid context_type", http.StatusBadRequest)
			return
		}

		supabaseClient, _, err := supabase.ClientFromRequest(r)
		if err != nil {
			config.Logger.Error("Failed to create Supabase client:", err)
			writeError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		// Analyze before saving so the row is stored already processed.
		analysis := engine.AnalyzeContext(&entry)
		entry.Keywords = analysis.Keywords
		entry.SentimentScore = analysis.SentimentScore
		entry.UrgencyScore = analysis.UrgencyScore
		entry.Processed = true

		saved, err := supabase.InsertAndReturnContext(supabaseClient, entry)
		if err != nil {
			config.Logger.Error("Failed to save context entry:", err)
			writeError(w, "Failed to create context entry", http.StatusInternalServerError)
			return
		}

		// Synthesize task drafts from the stored entry and persist them.
		suggestions := engine.GenerateSuggestions(&saved)
		if err := supabase.SaveSuggestions(supabaseClient, suggestions); err != nil {
			config.Logger.Warn("Failed to save suggestions:", err)
		}

		writeJSON(w, http.StatusCreated, types.ContextResponse{
			Success:     true,
			Context:     saved,
			Suggestions: suggestions,
		})
	}
}

func GetContextsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	contextType := q.Get("context_type")
	if contextType != "" && !config.IsValid(contextType, config.ValidContextTypes) {
		writeError(w, "Invalid context_type", http.StatusBadRequest)
		return
	}

	limit := 0
	if limitStr := q.Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			writeError(w, "Invalid limit value", http.StatusBadRequest)
			return
		}
	}

	supabaseClient, _, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := supabase.GetContexts(supabaseClient, contextType, limit)
	if err != nil {
		config.Logger.Error("Failed to fetch context entries:", err)
		writeError(w, "Failed to fetch context entries", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetContextsResponse{
		Success:  true,
		Contexts: entries,
	})
}
