package handlers

import (
	"math"
	"net/http"
	"time"

	"smarttodo/backend/ai"
	"smarttodo/backend/config"
	"smarttodo/backend/supabase"
	"smarttodo/backend/types"
)

// AnalyticsHandler reduces the full task set into summary statistics,
// distributions, and engine-derived insights.
func AnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	supabaseClient, _, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tasks, err := supabase.GetAllTasks(supabaseClient)
	if err != nil {
		config.Logger.Error("Failed to fetch tasks:", err)
		writeError(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	now := time.Now()

	summary := types.AnalyticsSummary{TotalTasks: len(tasks)}
	priorityDist := map[string]int{}
	for _, p := range config.ValidPriorities {
		priorityDist[p] = 0
	}
	categoryDist := map[string]int{}

	scoreSum := 0.0
	highPriority := 0

	for _, task := range tasks {
		switch task.Status {
		case config.StatusCompleted:
			summary.CompletedTasks++
		case config.StatusPending:
			summary.PendingTasks++
			if task.Deadline != nil && task.Deadline.Before(now) {
				summary.OverdueTasks++
			}
		}

		priorityDist[task.Priority]++
		if task.CategoryName != "" {
			categoryDist[task.CategoryName]++
		}

		scoreSum += task.AIPriorityScore
		if task.AIPriorityScore >= 0.8 {
			highPriority++
		}
	}

	if summary.TotalTasks > 0 {
		rate := float64(summary.CompletedTasks) / float64(summary.TotalTasks) * 100
		summary.CompletionRate = math.Round(rate*100) / 100
	}

	insights := types.AIInsights{
		HighPriorityTasks: highPriority,
		WorkloadScore:     ai.WorkloadScore(tasks),
	}
	if len(tasks) > 0 {
		insights.AvgPriorityScore = scoreSum / float64(len(tasks))
	}

	// GetAllTasks returns newest first, so the head is the recent slice.
	recent := tasks
	if len(recent) > 5 {
		recent = recent[:5]
	}

	writeJSON(w, http.StatusOK, types.AnalyticsResponse{
		Success:              true,
		Summary:              summary,
		PriorityDistribution: priorityDist,
		CategoryDistribution: categoryDist,
		RecentTasks:          recent,
		AIInsights:           insights,
	})
}
