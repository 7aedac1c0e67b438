package ai

import (
	"strings"
	"unicode"

	"smarttodo/backend/config"
	"smarttodo/backend/types"
)

const (
	maxSuggestions = 5
	// Phrases at or under this length are noise, not tasks.
	minPhraseLength = 5

	suggestionConfidence = 0.7
)

// GenerateSuggestions turns the candidate-task phrases extracted from a
// context entry into structured task drafts: capitalized title, a
// description referencing the originating context type, the categorizer's
// best guess for the phrase, and a fixed medium priority. A nil entry or
// empty content yields an empty slice.
func (e *Engine) GenerateSuggestions(entry *types.ContextEntry) []types.TaskSuggestion {
	suggestions := []types.TaskSuggestion{}
	if entry == nil || entry.Content == "" {
		return suggestions
	}

	analysis := e.AnalyzeContext(entry)

	contextType := entry.ContextType
	if contextType == "" {
		contextType = config.ContextTypeUnknown
	}

	for _, phrase := range analysis.PotentialTasks {
		if len(suggestions) == maxSuggestions {
			break
		}
		phrase = strings.TrimSpace(phrase)
		if len(phrase) <= minPhraseLength {
			continue
		}

		suggestion := types.TaskSuggestion{
			Title:             capitalize(phrase),
			Description:       "Generated from context: " + contextType,
			SuggestedCategory: e.CategorizeTask(phrase, "", nil).SuggestedCategory,
			SuggestedPriority: config.PriorityMedium,
			ConfidenceScore:   suggestionConfidence,
		}
		if entry.ID != "" {
			id := entry.ID
			suggestion.ContextID = &id
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
