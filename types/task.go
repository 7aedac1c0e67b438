package types

import "time"

type Task struct {
	ID                    string     `json:"id,omitempty"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	CategoryID            *string    `json:"category_id,omitempty"` // nullable
	CategoryName          string     `json:"category_name,omitempty"`
	Priority              string     `json:"priority"` // low | medium | high | urgent
	Status                string     `json:"status"`   // pending | in_progress | completed | cancelled
	Deadline              *time.Time `json:"deadline,omitempty"`
	EstimatedDuration     *int       `json:"estimated_duration,omitempty"` // minutes
	Tags                  []string   `json:"tags,omitempty"`
	AIPriorityScore       float64    `json:"ai_priority_score"`
	AIEnhancedDescription string     `json:"ai_enhanced_description,omitempty"`
	CreatedAt             time.Time  `json:"created_at,omitempty"`
	UpdatedAt             time.Time  `json:"updated_at,omitempty"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"`
}

type TaskResponse struct {
	Success      bool   `json:"success"`
	Task         Task   `json:"task,omitempty"`  // the created or updated task
	ErrorMessage string `json:"error,omitempty"` // only set on failure
}

type DeleteTaskResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`   // only set on failure
	Message      string `json:"message,omitempty"` // confirmation message
}

type GetTasksResponse struct {
	Success      bool   `json:"success"`
	Tasks        []Task `json:"tasks,omitempty"`
	Total        int    `json:"total,omitempty"`  // Optional: total count for pagination
	Limit        int    `json:"limit,omitempty"`  // Echoed back from request
	Offset       int    `json:"offset,omitempty"` // Echoed back from request
	ErrorMessage string `json:"error,omitempty"`  // Only set on failure
}

type GetSingleTaskResponse struct {
	Success      bool   `json:"success"`
	Task         Task   `json:"task,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}

type SupabaseGetTasksResponse struct {
	Data  []Task `json:"data"`
	Count int64  `json:"count"`
}
