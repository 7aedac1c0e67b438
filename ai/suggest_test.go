package ai

import (
	"fmt"
	"strings"
	"testing"

	"smarttodo/backend/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSuggestionsEmptyInput(t *testing.T) {
	engine := New()

	for name, entry := range map[string]*types.ContextEntry{
		"nil entry":     nil,
		"empty content": {Content: "", ContextType: "note"},
	} {
		t.Run(name, func(t *testing.T) {
			suggestions := engine.GenerateSuggestions(entry)
			require.NotNil(t, suggestions)
			assert.Empty(t, suggestions)
		})
	}
}

func TestGenerateSuggestionsFromNote(t *testing.T) {
	engine := New()
	entry := &types.ContextEntry{
		ID:          "ctx-1",
		Content:     "I need to call the dentist tomorrow. Also I must pay the electricity bill.",
		ContextType: "note",
	}

	suggestions := engine.GenerateSuggestions(entry)

	require.Len(t, suggestions, 2)

	first := suggestions[0]
	assert.Equal(t, "Call the dentist tomorrow", first.Title)
	assert.Equal(t, "Generated from context: note", first.Description)
	assert.Equal(t, "general", first.SuggestedCategory)
	assert.Equal(t, "medium", first.SuggestedPriority)
	assert.InDelta(t, 0.7, first.ConfidenceScore, 1e-9)
	require.NotNil(t, first.ContextID)
	assert.Equal(t, "ctx-1", *first.ContextID)

	second := suggestions[1]
	assert.Equal(t, "Pay the electricity bill", second.Title)
	assert.Equal(t, "finance", second.SuggestedCategory)
}

func TestGenerateSuggestionsSkipsShortPhrases(t *testing.T) {
	engine := New()
	entry := &types.ContextEntry{Content: "I need to run. I need to call the bank.", ContextType: "note"}

	suggestions := engine.GenerateSuggestions(entry)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Call the bank", suggestions[0].Title)
	assert.Equal(t, "finance", suggestions[0].SuggestedCategory)
}

func TestGenerateSuggestionsCap(t *testing.T) {
	engine := New()
	var sb strings.Builder
	for i := 1; i <= 8; i++ {
		fmt.Fprintf(&sb, "I need to prepare the slide deck number %d. ", i)
	}
	entry := &types.ContextEntry{Content: sb.String(), ContextType: "email"}

	suggestions := engine.GenerateSuggestions(entry)

	assert.Len(t, suggestions, 5)
}

func TestGenerateSuggestionsDefaultsUnknownContextType(t *testing.T) {
	engine := New()
	entry := &types.ContextEntry{Content: "I need to water the plants."}

	suggestions := engine.GenerateSuggestions(entry)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Generated from context: unknown", suggestions[0].Description)
	assert.Nil(t, suggestions[0].ContextID)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Call the dentist", capitalize("CALL THE DENTIST"))
	assert.Equal(t, "Call the dentist", capitalize("call the dentist"))
	assert.Equal(t, "", capitalize(""))
}
