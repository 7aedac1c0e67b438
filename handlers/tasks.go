package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"smarttodo/backend/config"
	"smarttodo/backend/supabase"
	"smarttodo/backend/types"

	"github.com/google/uuid"
)

func CreateTaskHandler(w http.ResponseWriter, r *http.Request) {

	var task types.Task

	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		config.Logger.Error("Failed to decode task JSON:", err)
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	// Basic validation
	if task.Title == "" {
		writeError(w, "Missing title", http.StatusBadRequest)
		return
	}
	if task.Priority != "" && !config.IsValid(task.Priority, config.ValidPriorities) {
		writeError(w, "Invalid priority", http.StatusBadRequest)
		return
	}
	if task.Status != "" && !config.IsValid(task.Status, config.ValidStatuses) {
		writeError(w, "Invalid status", http.StatusBadRequest)
		return
	}

	supabaseClient, _, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	savedTask, err := supabase.InsertAndReturnTask(supabaseClient, task)
	if err != nil {
		config.Logger.Error("Failed to save task:", err)
		writeError(w, "Failed to create task", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, types.TaskResponse{
		Success: true,
		Task:    savedTask,
	})
}

func GetTasksHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := q.Get("status")
	priority := q.Get("priority")
	category := q.Get("category")
	search := q.Get("search")
	limitStr := q.Get("limit")
	offsetStr := q.Get("offset")

	limit := 20 // default
	offset := 0
	var err error

	if limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			config.Logger.Error("Invalid limit value:", err)
			writeError(w, "Invalid limit value", http.StatusBadRequest)
			return
		}
	}

	if offsetStr != "" {
		offset, err = strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			config.Logger.Error("Invalid offset value:", err)
			writeError(w, "Invalid offset value", http.StatusBadRequest)
			return
		}
	}

	supabaseClient, _, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tasks, total, err := supabase.GetTasks(supabaseClient, status, priority, category, search, limit, offset)
	if err != nil {
		config.Logger.Error("Failed to fetch tasks:", err)
		writeError(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetTasksResponse{
		Success: true,
		Tasks:   tasks,
		Limit:   limit,
		Offset:  offset,
		Total:   int(total),
	})
}

// get a single task by ID
func GetSingleTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}

	supabaseClient, _, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	task, err := supabase.GetSingleTask(supabaseClient, taskID)
	if err != nil {
		config.Logger.Error("Failed to fetch task:", err)
		writeError(w, "Failed to fetch task", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetSingleTaskResponse{
		Success: true,
		Task:    task,
	})
}

func UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(taskID); err != nil {
		config.Logger.Error("Invalid task ID format:", err)
		writeError(w, "Invalid task ID", http.StatusBadRequest)
		return
	}

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil || len(updates) == 0 {
		config.Logger.Error("Failed to decode update JSON:", err)
		writeError(w, "Invalid or empty update payload", http.StatusBadRequest)
		return
	}

	if status, ok := updates["status"].(string); ok && !config.IsValid(status, config.ValidStatuses) {
		writeError(w, "Invalid status", http.StatusBadRequest)
		return
	}
	if priority, ok := updates["priority"].(string); ok && !config.IsValid(priority, config.ValidPriorities) {
		writeError(w, "Invalid priority", http.StatusBadRequest)
		return
	}

	client, _, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeJSON(w, http.StatusUnauthorized, types.TaskResponse{
			Success:      false,
			ErrorMessage: "Unauthorized",
		})
		return
	}

	updatedTask, err := supabase.UpdateTask(client, taskID, updates)
	if err != nil {
		config.Logger.Error("Failed to update task:", err)
		writeJSON(w, http.StatusInternalServerError, types.TaskResponse{
			Success:      false,
			ErrorMessage: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, types.TaskResponse{
		Success: true,
		Task:    updatedTask,
	})
}

func DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("id")
	if taskID == "" {
		writeError(w, "Missing task ID", http.StatusBadRequest)
		return
	}

	supabaseClient, _, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := supabase.DeleteTask(supabaseClient, taskID); err != nil {
		config.Logger.Error("Failed to delete task:", err)
		writeError(w, "Could not delete task", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.DeleteTaskResponse{
		Success: true,
		Message: "Task deleted successfully",
	})
}
