package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"smarttodo/backend/types"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// InsertAndReturnContext saves a context entry, including any analysis
// results already set on it, and returns the stored row.
func InsertAndReturnContext(client *supabase.Client, entry types.ContextEntry) (types.ContextEntry, error) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	rows := []types.ContextEntry{entry}
	resp, _, err := client.From("contexts").Insert(rows, false, "", "representation", "").Execute()
	if err != nil {
		return types.ContextEntry{}, fmt.Errorf("failed to insert context entry: %w", err)
	}

	var created []types.ContextEntry
	if err := json.Unmarshal(resp, &created); err != nil {
		return types.ContextEntry{}, fmt.Errorf("failed to decode created context entry: %w", err)
	}
	if len(created) == 0 {
		return types.ContextEntry{}, fmt.Errorf("insert returned no rows")
	}
	return created[0], nil
}

// GetContexts lists context entries, most recent first, optionally filtered
// by context type.
func GetContexts(client *supabase.Client, contextType string, limit int) ([]types.ContextEntry, error) {
	query := client.From("contexts").Select("*", "", false)

	if contextType != "" {
		query = query.Eq("context_type", contextType)
	}

	query = query.Order("timestamp", &postgrest.OrderOpts{Ascending: false})
	if limit > 0 {
		query = query.Limit(limit, "")
	}

	resp, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch context entries: %w", err)
	}

	var entries []types.ContextEntry
	if err := json.Unmarshal(resp, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode context data: %w", err)
	}
	return entries, nil
}
