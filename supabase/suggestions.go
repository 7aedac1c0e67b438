package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"smarttodo/backend/types"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// SaveSuggestions persists engine-generated task drafts.
func SaveSuggestions(client *supabase.Client, suggestions []types.TaskSuggestion) error {
	if len(suggestions) == 0 {
		return nil
	}

	for i := range suggestions {
		if suggestions[i].CreatedAt.IsZero() {
			suggestions[i].CreatedAt = time.Now()
		}
	}

	_, _, err := client.From("task_suggestions").Insert(suggestions, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to save suggestions: %w", err)
	}
	return nil
}

// GetSuggestions lists unaccepted drafts, highest confidence first.
// minConfidence and daysBack are optional filters (zero disables them).
func GetSuggestions(client *supabase.Client, minConfidence float64, daysBack int) ([]types.TaskSuggestion, error) {
	query := client.From("task_suggestions").
		Select("*", "", false).
		Eq("accepted", "false")

	if minConfidence > 0 {
		query = query.Gte("confidence_score", fmt.Sprintf("%g", minConfidence))
	}
	if daysBack > 0 {
		cutoff := time.Now().AddDate(0, 0, -daysBack)
		query = query.Gte("created_at", cutoff.Format(time.RFC3339))
	}

	query = query.Order("confidence_score", &postgrest.OrderOpts{Ascending: false}).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})

	resp, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suggestions: %w", err)
	}

	var suggestions []types.TaskSuggestion
	if err := json.Unmarshal(resp, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestion data: %w", err)
	}
	return suggestions, nil
}

func GetSuggestion(client *supabase.Client, suggestionID string) (types.TaskSuggestion, error) {
	resp, _, err := client.From("task_suggestions").
		Select("*", "", false).
		Eq("id", suggestionID).
		Single().
		Execute()
	if err != nil {
		return types.TaskSuggestion{}, fmt.Errorf("failed to fetch suggestion: %w", err)
	}

	var suggestion types.TaskSuggestion
	if err := json.Unmarshal(resp, &suggestion); err != nil {
		return types.TaskSuggestion{}, fmt.Errorf("failed to decode suggestion: %w", err)
	}
	return suggestion, nil
}

func MarkSuggestionAccepted(client *supabase.Client, suggestionID string) error {
	_, _, err := client.From("task_suggestions").
		Update(map[string]interface{}{"accepted": true}, "", "").
		Eq("id", suggestionID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to mark suggestion accepted: %w", err)
	}
	return nil
}
