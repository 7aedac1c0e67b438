package types

import "time"

type Category struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"` // hex color code for UI display
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// CategoryResult is the engine's best-fit category for a task's text.
type CategoryResult struct {
	SuggestedCategory string   `json:"suggested_category"`
	Confidence        float64  `json:"confidence"`             // [0, 1]
	Alternatives      []string `json:"alternatives,omitempty"` // up to 3, confidence-descending
}

type CategoryResponse struct {
	Success      bool     `json:"success"`
	Category     Category `json:"category,omitempty"`
	ErrorMessage string   `json:"error,omitempty"`
}

type GetCategoriesResponse struct {
	Success      bool       `json:"success"`
	Categories   []Category `json:"categories,omitempty"`
	ErrorMessage string     `json:"error,omitempty"`
}
