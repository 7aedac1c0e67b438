package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"smarttodo/backend/ai"
	"smarttodo/backend/config"
	"smarttodo/backend/llm"
	"smarttodo/backend/supabase"
	"smarttodo/backend/types"
)

// AIActionsHandler is the single AI endpoint: the request's action field
// selects the engine operation to run.
func AIActionsHandler(engine *ai.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AIActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			config.Logger.Error("Failed to decode AI action JSON:", err)
			writeError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.Action == "" {
			req.Action = "prioritize"
		}

		supabaseClient, _, err := supabase.ClientFromRequest(r)
		if err != nil {
			config.Logger.Error("Failed to create Supabase client:", err)
			writeError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		resp := types.AIActionResponse{Success: true}

		switch req.Action {
		case "prioritize":
			tasks, err := supabase.GetPendingTasks(supabaseClient)
			if err != nil {
				config.Logger.Error("Failed to fetch pending tasks:", err)
				writeError(w, "Failed to fetch tasks", http.StatusInternalServerError)
				return
			}
			results := engine.PrioritizeTasks(tasks, req.ContextData)
			resp.PrioritizedTasks = results

			// Write the fresh scores back so task listings stay ordered.
			for _, result := range results {
				if result.TaskID == "" {
					continue
				}
				if err := supabase.SaveTaskScore(supabaseClient, result.TaskID, result.AIPriorityScore); err != nil {
					config.Logger.Warn("Failed to save task score:", err)
				}
			}

		case "suggest_deadline":
			if req.TaskData == nil {
				writeError(w, "Missing task_data", http.StatusBadRequest)
				return
			}
			minutes := 0
			if req.TaskData.EstimatedDuration != nil {
				minutes = *req.TaskData.EstimatedDuration
			}
			suggestion := engine.SuggestDeadline(req.TaskData.Title, req.TaskData.Description, minutes)
			resp.DeadlineSuggestion = &suggestion

		case "categorize":
			if req.TaskData == nil {
				writeError(w, "Missing task_data", http.StatusBadRequest)
				return
			}
			existing, err := supabase.CategoryNames(supabaseClient)
			if err != nil {
				config.Logger.Warn("Failed to fetch categories:", err)
			}
			result := engine.CategorizeTask(req.TaskData.Title, req.TaskData.Description, existing)
			resp.Categorization = &result

		case "enhance_description":
			if req.TaskData == nil {
				writeError(w, "Missing task_data", http.StatusBadRequest)
				return
			}
			result := engine.EnhanceDescription(req.TaskData.Title, req.TaskData.Description, req.ContextData)

			// Optional text-completion pass; the heuristic result above
			// already stands on its own when no key is configured.
			if os.Getenv("OPENAI_API_KEY") != "" {
				if text, err := llm.EnhanceDescription(req.TaskData.Title, result.EnhancedDescription); err != nil {
					config.Logger.Warn("LLM enhancement failed, using heuristic result:", err)
				} else {
					result.EnhancedDescription = text
				}
			}
			resp.Enhancement = &result

		case "generate_suggestions":
			suggestions := engine.GenerateSuggestions(req.ContextData)
			if err := supabase.SaveSuggestions(supabaseClient, suggestions); err != nil {
				config.Logger.Warn("Failed to save suggestions:", err)
			}
			resp.Suggestions = suggestions

		case "analyze_context":
			analysis := engine.AnalyzeContext(req.ContextData)
			resp.Analysis = &analysis

		case "suggest_schedule":
			tasks, err := supabase.GetPendingTasks(supabaseClient)
			if err != nil {
				config.Logger.Error("Failed to fetch pending tasks:", err)
				writeError(w, "Failed to fetch tasks", http.StatusInternalServerError)
				return
			}
			schedule := engine.SuggestSchedule(tasks)
			resp.Schedule = &schedule

		default:
			writeError(w, "Invalid action specified", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
