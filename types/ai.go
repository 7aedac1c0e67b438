package types

import "time"

// PriorityResult is one task's computed priority. A prioritized list is
// totally ordered by AIPriorityScore descending; ties keep input order.
type PriorityResult struct {
	TaskID            string  `json:"task_id"`
	Title             string  `json:"title"`
	Description       string  `json:"description,omitempty"`
	CurrentPriority   string  `json:"current_priority"`
	AIPriorityScore   float64 `json:"ai_priority_score"` // [0, 1]
	SuggestedPriority string  `json:"suggested_priority"`
	Reasoning         string  `json:"reasoning"`
}

type DeadlineSuggestion struct {
	SuggestedDeadline time.Time `json:"suggested_deadline"`
	Confidence        float64   `json:"confidence"`
	Reasoning         string    `json:"reasoning"`
}

type EnhancementResult struct {
	EnhancedDescription string  `json:"enhanced_description"`
	Confidence          float64 `json:"confidence"`
	AddedContext        bool    `json:"added_context"`
}

// ScheduleSlot is one entry of a suggested working schedule.
type ScheduleSlot struct {
	TaskID         string    `json:"task_id"`
	Title          string    `json:"title"`
	SuggestedStart time.Time `json:"suggested_start"`
	SuggestedEnd   time.Time `json:"suggested_end"`
	PriorityScore  float64   `json:"priority_score"`
}

type ScheduleSuggestion struct {
	Schedule  []ScheduleSlot `json:"schedule"`
	Reasoning string         `json:"reasoning"`
}

// AIActionRequest is the body of POST /ai/suggestions. Action selects the
// engine operation; TaskData and ContextData are read as each action needs.
type AIActionRequest struct {
	Action      string        `json:"action"`
	TaskData    *Task         `json:"task_data,omitempty"`
	ContextData *ContextEntry `json:"context_data,omitempty"`
}

type AIActionResponse struct {
	Success            bool                `json:"success"`
	PrioritizedTasks   []PriorityResult    `json:"prioritized_tasks,omitempty"`
	DeadlineSuggestion *DeadlineSuggestion `json:"deadline_suggestion,omitempty"`
	Categorization     *CategoryResult     `json:"categorization,omitempty"`
	Enhancement        *EnhancementResult  `json:"enhancement,omitempty"`
	Suggestions        []TaskSuggestion    `json:"suggestions,omitempty"`
	Analysis           *ContextAnalysis    `json:"analysis,omitempty"`
	Schedule           *ScheduleSuggestion `json:"schedule,omitempty"`
	ErrorMessage       string              `json:"error,omitempty"`
}
