package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSuggestDeadlineDefaultDuration(t *testing.T) {
	engine := newTestEngine()

	result := engine.SuggestDeadline("write memo", "", 0)

	// One hour from the Thursday anchor stays on Thursday.
	assert.Equal(t, testNow.Add(60*time.Minute), result.SuggestedDeadline)
	assert.InDelta(t, 0.7, result.Confidence, 1e-9)
	assert.Equal(t, "Based on estimated duration (60 minutes) and complexity analysis", result.Reasoning)
}

func TestSuggestDeadlineNegativeEstimateFallsBack(t *testing.T) {
	engine := newTestEngine()

	result := engine.SuggestDeadline("write memo", "", -30)

	assert.Equal(t, testNow.Add(60*time.Minute), result.SuggestedDeadline)
}

func TestSuggestDeadlineComplexityStretchesEstimate(t *testing.T) {
	engine := newTestEngine()

	// research and analysis hit two of six indicators: 60 * (1 + 2/6) = 80.
	result := engine.SuggestDeadline("Research and analysis", "", 60)

	assert.WithinDuration(t, testNow.Add(80*time.Minute), result.SuggestedDeadline, time.Second)
	assert.Equal(t, "Based on estimated duration (80 minutes) and complexity analysis", result.Reasoning)
}

func TestSuggestDeadlineWeekendRollsToMonday(t *testing.T) {
	engine := newTestEngine()
	monday := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)

	t.Run("saturday landing", func(t *testing.T) {
		result := engine.SuggestDeadline("write memo", "", 48*60)
		assert.Equal(t, time.Monday, result.SuggestedDeadline.Weekday())
		assert.Equal(t, monday, result.SuggestedDeadline)
	})

	t.Run("sunday landing", func(t *testing.T) {
		result := engine.SuggestDeadline("write memo", "", 72*60)
		assert.Equal(t, time.Monday, result.SuggestedDeadline.Weekday())
		assert.Equal(t, monday, result.SuggestedDeadline)
	})

	t.Run("friday stays", func(t *testing.T) {
		result := engine.SuggestDeadline("write memo", "", 24*60)
		assert.Equal(t, time.Friday, result.SuggestedDeadline.Weekday())
		assert.Equal(t, testNow.AddDate(0, 0, 1), result.SuggestedDeadline)
	})
}

func TestAssessComplexity(t *testing.T) {
	assert.Zero(t, assessComplexity("write memo", ""))
	assert.InDelta(t, 2.0/6.0, assessComplexity("design", "needs planning"), 1e-9)
	assert.InDelta(t, 1.0, assessComplexity(
		"research analysis development", "design planning coordination"), 1e-9)
}
