package ai

import (
	"fmt"
	"strings"
	"time"

	"smarttodo/backend/types"
)

// defaultDurationMinutes is assumed when the caller gives no estimate.
const defaultDurationMinutes = 60

// deadlineConfidence is fixed: the advisor is a calendar heuristic, not a
// calibrated estimator.
const deadlineConfidence = 0.7

// complexityIndicators is the fixed keyword set whose presence stretches the
// estimated duration. Complexity is the fraction of the set found in the
// task text.
var complexityIndicators = []string{
	"research", "analysis", "development", "design", "planning", "coordination",
}

// SuggestDeadline estimates a realistic deadline from the task's estimated
// duration (minutes; <= 0 means unknown, defaulting to one hour) stretched
// by a complexity factor, counted forward from now. A deadline landing on a
// weekend rolls forward to the next Monday.
func (e *Engine) SuggestDeadline(title, description string, estimatedMinutes int) types.DeadlineSuggestion {
	if estimatedMinutes <= 0 {
		estimatedMinutes = defaultDurationMinutes
	}

	complexity := assessComplexity(title, description)
	adjustedMinutes := float64(estimatedMinutes) * (1 + complexity)

	deadline := e.now().Add(time.Duration(adjustedMinutes * float64(time.Minute)))

	// Weekday index with Monday=0; Saturday and Sunday roll to Monday.
	if idx := (int(deadline.Weekday()) + 6) % 7; idx >= 5 {
		deadline = deadline.AddDate(0, 0, 7-idx)
	}

	return types.DeadlineSuggestion{
		SuggestedDeadline: deadline,
		Confidence:        deadlineConfidence,
		Reasoning:         fmt.Sprintf("Based on estimated duration (%.0f minutes) and complexity analysis", adjustedMinutes),
	}
}

// assessComplexity scores task complexity in [0, 1] as the fraction of
// complexity indicators present in the text.
func assessComplexity(title, description string) float64 {
	text := strings.ToLower(title + " " + description)
	hits := 0
	for _, indicator := range complexityIndicators {
		if strings.Contains(text, indicator) {
			hits++
		}
	}
	return clamp(float64(hits)/float64(len(complexityIndicators)), 0, 1)
}
