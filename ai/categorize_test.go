package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeTaskShopping(t *testing.T) {
	engine := New()

	result := engine.CategorizeTask("Buy groceries", "Weekly shopping for food items", nil)

	assert.Equal(t, "shopping", result.SuggestedCategory)
	// buy, shop and grocery hit out of five keywords.
	assert.InDelta(t, 3.0/5.0, result.Confidence, 1e-9)
	assert.Empty(t, result.Alternatives)
}

func TestCategorizeTaskCaseInsensitive(t *testing.T) {
	engine := New()

	result := engine.CategorizeTask("BUY GROCERIES", "", nil)

	assert.Equal(t, "shopping", result.SuggestedCategory)
}

func TestCategorizeTaskTieGoesToEarlierCategory(t *testing.T) {
	engine := New()

	// One keyword each for work (meeting) and home (clean); work is listed
	// first in the taxonomy and wins the tie.
	result := engine.CategorizeTask("meeting clean", "", nil)

	assert.Equal(t, "work", result.SuggestedCategory)
	assert.Equal(t, []string{"home"}, result.Alternatives)
}

func TestCategorizeTaskHigherScoreWins(t *testing.T) {
	engine := New()

	// home scores two (clean, house) against work's one (meeting).
	result := engine.CategorizeTask("clean the house before the meeting", "", nil)

	assert.Equal(t, "home", result.SuggestedCategory)
	assert.InDelta(t, 2.0/5.0, result.Confidence, 1e-9)
	assert.Equal(t, []string{"work"}, result.Alternatives)
}

func TestCategorizeTaskAlternativesExcludeWinnerAndCapAtThree(t *testing.T) {
	engine := New()

	text := "buy medicine for the trip, pay the bill, study the book, clean the house, meeting with client"
	result := engine.CategorizeTask(text, "", nil)

	// work, education and home all score two; work is earliest and wins.
	assert.Equal(t, "work", result.SuggestedCategory)
	assert.Len(t, result.Alternatives, 3)
	assert.NotContains(t, result.Alternatives, "work")
	assert.Equal(t, []string{"education", "home", "shopping"}, result.Alternatives)
}

func TestCategorizeTaskGeneralFallback(t *testing.T) {
	engine := New()

	result := engine.CategorizeTask("zzz qqq", "", nil)

	assert.Equal(t, "general", result.SuggestedCategory)
	assert.InDelta(t, 0.1, result.Confidence, 1e-9)
	assert.NotNil(t, result.Alternatives)
	assert.Empty(t, result.Alternatives)
}

func TestCategorizeTaskExistingCategoriesDoNotAffectScoring(t *testing.T) {
	engine := New()

	without := engine.CategorizeTask("Buy groceries", "", nil)
	with := engine.CategorizeTask("Buy groceries", "", []string{"errands", "chores"})

	assert.Equal(t, without, with)
}
