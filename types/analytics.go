package types

// AnalyticsSummary holds headline task counts.
type AnalyticsSummary struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	PendingTasks   int     `json:"pending_tasks"`
	OverdueTasks   int     `json:"overdue_tasks"`
	CompletionRate float64 `json:"completion_rate"` // percentage, rounded to 2 decimals
}

// AIInsights aggregates the engine-derived fields across all tasks.
type AIInsights struct {
	AvgPriorityScore  float64 `json:"avg_priority_score"`
	HighPriorityTasks int     `json:"high_priority_tasks"` // ai_priority_score >= 0.8
	WorkloadScore     float64 `json:"workload_score"`      // [0, 1]
}

type AnalyticsResponse struct {
	Success              bool             `json:"success"`
	Summary              AnalyticsSummary `json:"summary"`
	PriorityDistribution map[string]int   `json:"priority_distribution"`
	CategoryDistribution map[string]int   `json:"category_distribution"`
	RecentTasks          []Task           `json:"recent_tasks"`
	AIInsights           AIInsights       `json:"ai_insights"`
	ErrorMessage         string           `json:"error,omitempty"`
}
