package types

import "time"

// TaskSuggestion is a synthesized, not-yet-accepted task proposal derived
// from a context entry.
type TaskSuggestion struct {
	ID                string     `json:"id,omitempty"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	SuggestedCategory string     `json:"suggested_category"`
	SuggestedPriority string     `json:"suggested_priority"`
	SuggestedDeadline *time.Time `json:"suggested_deadline,omitempty"`
	ConfidenceScore   float64    `json:"confidence_score"`
	ContextID         *string    `json:"context_id,omitempty"` // source context entry
	CreatedAt         time.Time  `json:"created_at,omitempty"`
	Accepted          bool       `json:"accepted"`
}

type GetSuggestionsResponse struct {
	Success      bool             `json:"success"`
	Suggestions  []TaskSuggestion `json:"suggestions,omitempty"`
	ErrorMessage string           `json:"error,omitempty"`
}

type AcceptSuggestionResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	TaskID       string `json:"task_id,omitempty"` // the task created from the draft
	ErrorMessage string `json:"error,omitempty"`
}
