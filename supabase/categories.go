package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"smarttodo/backend/types"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

const defaultCategoryColor = "#007bff"

func GetCategories(client *supabase.Client) ([]types.Category, error) {
	resp, _, err := client.From("categories").
		Select("*", "", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	var categories []types.Category
	if err := json.Unmarshal(resp, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode category data: %w", err)
	}
	return categories, nil
}

// CategoryNames returns just the persisted category names, for passing to
// the categorizer.
func CategoryNames(client *supabase.Client) ([]string, error) {
	categories, err := GetCategories(client)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names, nil
}

func InsertAndReturnCategory(client *supabase.Client, category types.Category) (types.Category, error) {
	if category.Color == "" {
		category.Color = defaultCategoryColor
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}

	rows := []types.Category{category}
	resp, _, err := client.From("categories").Insert(rows, false, "", "representation", "").Execute()
	if err != nil {
		return types.Category{}, fmt.Errorf("failed to insert category: %w", err)
	}

	var created []types.Category
	if err := json.Unmarshal(resp, &created); err != nil {
		return types.Category{}, fmt.Errorf("failed to decode created category: %w", err)
	}
	if len(created) == 0 {
		return types.Category{}, fmt.Errorf("insert returned no rows")
	}
	return created[0], nil
}
