package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"smarttodo/backend/config"
	"smarttodo/backend/types"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// InsertAndReturnTask saves a task and returns the stored row.
func InsertAndReturnTask(client *supabase.Client, task types.Task) (types.Task, error) {
	if task.Status == "" {
		task.Status = config.StatusPending
	}
	if task.Priority == "" {
		task.Priority = config.PriorityMedium
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	task.UpdatedAt = task.CreatedAt

	rows := []types.Task{task}
	resp, _, err := client.From("tasks").Insert(rows, false, "", "representation", "").Execute()
	if err != nil {
		return types.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}

	var created []types.Task
	if err := json.Unmarshal(resp, &created); err != nil {
		return types.Task{}, fmt.Errorf("failed to decode created task: %w", err)
	}
	if len(created) == 0 {
		return types.Task{}, fmt.Errorf("insert returned no rows")
	}
	return created[0], nil
}

// GetTasks lists tasks with optional filters, ordered by AI priority score
// descending then creation date, paginated by limit/offset.
func GetTasks(client *supabase.Client, status, priority, category, search string, limit, offset int) ([]types.Task, int64, error) {
	query := client.From("tasks").Select("*", "exact", false)

	if status != "" {
		query = query.Eq("status", status)
	}
	if priority != "" {
		query = query.Eq("priority", priority)
	}
	if category != "" {
		query = query.Eq("category_name", category)
	}
	if search != "" {
		query = query.Or(fmt.Sprintf("title.ilike.%%%s%%,description.ilike.%%%s%%", search, search), "")
	}

	query = query.Order("ai_priority_score", &postgrest.OrderOpts{Ascending: false}).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Range(offset, offset+limit-1, "")

	resp, count, err := query.Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	var tasks []types.Task
	if err := json.Unmarshal(resp, &tasks); err != nil {
		return nil, 0, fmt.Errorf("failed to decode task data: %w", err)
	}
	return tasks, count, nil
}

// GetAllTasks fetches every task; the analytics and scheduling paths reduce
// over the full set in memory.
func GetAllTasks(client *supabase.Client) ([]types.Task, error) {
	resp, _, err := client.From("tasks").
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	var tasks []types.Task
	if err := json.Unmarshal(resp, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode task data: %w", err)
	}
	return tasks, nil
}

// GetPendingTasks fetches the tasks eligible for prioritization.
func GetPendingTasks(client *supabase.Client) ([]types.Task, error) {
	resp, _, err := client.From("tasks").
		Select("*", "", false).
		Eq("status", config.StatusPending).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending tasks: %w", err)
	}

	var tasks []types.Task
	if err := json.Unmarshal(resp, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode task data: %w", err)
	}
	return tasks, nil
}

func GetSingleTask(client *supabase.Client, taskID string) (types.Task, error) {
	resp, _, err := client.From("tasks").
		Select("*", "", false).
		Eq("id", taskID).
		Single().
		Execute()
	if err != nil {
		return types.Task{}, fmt.Errorf("failed to fetch task: %w", err)
	}

	var task types.Task
	if err := json.Unmarshal(resp, &task); err != nil {
		return types.Task{}, fmt.Errorf("failed to decode task: %w", err)
	}
	return task, nil
}

func UpdateTask(client *supabase.Client, taskID string, updates map[string]interface{}) (types.Task, error) {
	updates["updated_at"] = time.Now()

	// Completing a task stamps completed_at exactly once.
	if status, ok := updates["status"].(string); ok && status == config.StatusCompleted {
		if _, set := updates["completed_at"]; !set {
			updates["completed_at"] = time.Now()
		}
	}

	resp, _, err := client.From("tasks").
		Update(updates, "", "").
		Eq("id", taskID).
		Execute()
	if err != nil {
		return types.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	var updated []types.Task
	if err := json.Unmarshal(resp, &updated); err != nil {
		return types.Task{}, fmt.Errorf("failed to decode updated task: %w", err)
	}
	if len(updated) == 0 {
		return types.Task{}, fmt.Errorf("task not found: %s", taskID)
	}
	return updated[0], nil
}

func DeleteTask(client *supabase.Client, taskID string) error {
	_, _, err := client.From("tasks").
		Delete("", "").
		Eq("id", taskID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// SaveTaskScore writes a computed priority score back onto the task row.
func SaveTaskScore(client *supabase.Client, taskID string, score float64) error {
	_, _, err := client.From("tasks").
		Update(map[string]interface{}{
			"ai_priority_score": score,
			"updated_at":        time.Now(),
		}, "", "").
		Eq("id", taskID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to save task score: %w", err)
	}
	return nil
}
