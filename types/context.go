package types

import "time"

// ContextEntry is a piece of free-form daily context (message, note,
// meeting summary) to be mined for task-relevant signal. The analysis
// fields are filled in once the engine has processed the entry.
type ContextEntry struct {
	ID          string    `json:"id,omitempty"`
	Content     string    `json:"content"`
	ContextType string    `json:"context_type"` // whatsapp | email | note | meeting | call
	Timestamp   time.Time `json:"timestamp,omitempty"`
	Sender      string    `json:"sender,omitempty"`
	Subject     string    `json:"subject,omitempty"`

	// Analysis results
	Keywords       []string `json:"keywords,omitempty"`
	SentimentScore float64  `json:"sentiment_score"`
	UrgencyScore   float64  `json:"urgency_score"`
	Processed      bool     `json:"processed"`
}

// ContextAnalysis is the full result of analyzing one context entry.
// All slices respect their stated caps; scores are clamped.
type ContextAnalysis struct {
	Keywords           []string `json:"keywords"`            // up to 10, relevance-descending
	SentimentScore     float64  `json:"sentiment_score"`     // [-1, 1]
	UrgencyScore       float64  `json:"urgency_score"`       // [0, 1]
	PotentialTasks     []string `json:"potential_tasks"`     // up to 5
	DeadlinesMentioned []string `json:"deadlines_mentioned"` // up to 3
	PeopleMentioned    []string `json:"people_mentioned"`    // up to 5, deduplicated
	ProjectsMentioned  []string `json:"projects_mentioned"`  // up to 3, deduplicated
}

type ContextResponse struct {
	Success      bool             `json:"success"`
	Context      ContextEntry     `json:"context,omitempty"`
	Suggestions  []TaskSuggestion `json:"suggestions,omitempty"` // drafts generated from the entry
	ErrorMessage string           `json:"error,omitempty"`
}

type GetContextsResponse struct {
	Success      bool           `json:"success"`
	Contexts     []ContextEntry `json:"contexts,omitempty"`
	ErrorMessage string         `json:"error,omitempty"`
}
