package ai

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"smarttodo/backend/config"
	"smarttodo/backend/types"
)

// Weight constants of the priority score. The three terms are a declared
// priority base, deadline proximity, and context relevance.
const (
	basePriorityWeight     = 0.3
	contextWeight          = 0.3
	urgentContextBonus     = 0.3
	maxOverlapContribution = 0.5
)

var basePriorityScores = map[string]float64{
	config.PriorityLow:    0.2,
	config.PriorityMedium: 0.5,
	config.PriorityHigh:   0.8,
	config.PriorityUrgent: 1.0,
}

// PrioritizeTasks scores each task independently and returns the results
// ordered by score descending. The sort is stable: tasks with equal scores
// keep their input order. Each task's score depends only on the task itself
// and the shared read-only context entry, so the per-task computation is
// order-independent.
func (e *Engine) PrioritizeTasks(tasks []types.Task, contextData *types.ContextEntry) []types.PriorityResult {
	if len(tasks) == 0 {
		return []types.PriorityResult{}
	}

	results := make([]types.PriorityResult, 0, len(tasks))
	for _, task := range tasks {
		score := e.priorityScore(task, contextData)
		results = append(results, types.PriorityResult{
			TaskID:            task.ID,
			Title:             task.Title,
			Description:       task.Description,
			CurrentPriority:   task.Priority,
			AIPriorityScore:   score,
			SuggestedPriority: scoreToPriority(score),
			Reasoning:         e.priorityReasoning(task, score, contextData),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AIPriorityScore > results[j].AIPriorityScore
	})

	return results
}

func (e *Engine) priorityScore(task types.Task, contextData *types.ContextEntry) float64 {
	score := 0.0

	base, ok := basePriorityScores[task.Priority]
	if !ok {
		base = basePriorityScores[config.PriorityMedium]
	}
	score += base * basePriorityWeight

	if task.Deadline != nil {
		switch days := e.deadlineDays(*task.Deadline); {
		case days <= 1:
			score += 0.4
		case days <= 3:
			score += 0.3
		case days <= 7:
			score += 0.2
		default:
			score += 0.1
		}
	}

	if contextData != nil {
		score += e.contextRelevance(task, contextData) * contextWeight
	}

	return clamp(score, 0, 1)
}

// deadlineDays truncates the remaining time to whole days. Overdue
// deadlines come out negative and land in the closest proximity bucket.
func (e *Engine) deadlineDays(deadline time.Time) int {
	return int(deadline.Sub(e.now()).Hours() / 24)
}

// contextRelevance measures how relevant the task is to the context entry:
// the fraction of the task's raw tokens that also appear in the context text
// (capped at 0.5), plus a flat bonus when the context itself reads urgent.
// The overlap is deliberately computed on unfiltered whitespace tokens.
func (e *Engine) contextRelevance(task types.Task, contextData *types.ContextEntry) float64 {
	if contextData == nil {
		return 0
	}

	relevance := 0.0

	taskTokens := rawTokenSet(task.Title + " " + task.Description)
	contextTokens := rawTokenSet(contextData.Content)

	overlap := 0
	for tok := range taskTokens {
		if _, ok := contextTokens[tok]; ok {
			overlap++
		}
	}
	if overlap > 0 && len(taskTokens) > 0 {
		ratio := float64(overlap) / float64(len(taskTokens))
		if ratio > maxOverlapContribution {
			ratio = maxOverlapContribution
		}
		relevance += ratio
	}

	if e.contextUrgency(contextData) > 0.5 {
		relevance += urgentContextBonus
	}

	return clamp(relevance, 0, 1)
}

// contextUrgency prefers the urgency stored by a previous analysis pass and
// recomputes it from the raw content otherwise, so callers may hand over
// either a processed entry or bare text.
func (e *Engine) contextUrgency(contextData *types.ContextEntry) float64 {
	if contextData == nil {
		return 0
	}
	if contextData.Processed {
		return contextData.UrgencyScore
	}
	return urgencyScore(contextData.Content)
}

// scoreToPriority bucketizes a score into a priority label.
func scoreToPriority(score float64) string {
	switch {
	case score >= 0.8:
		return config.PriorityUrgent
	case score >= 0.6:
		return config.PriorityHigh
	case score >= 0.4:
		return config.PriorityMedium
	default:
		return config.PriorityLow
	}
}

// priorityReasoning emits the applicable reasons in a fixed order: deadline
// proximity, context urgency, declared urgency, then a numeric fallback when
// nothing else fired.
func (e *Engine) priorityReasoning(task types.Task, score float64, contextData *types.ContextEntry) string {
	var reasons []string

	if task.Deadline != nil {
		if days := e.deadlineDays(*task.Deadline); days <= 1 {
			reasons = append(reasons, "Deadline is very close (within 1 day)")
		} else if days <= 3 {
			reasons = append(reasons, "Deadline approaching (within 3 days)")
		}
	}

	if contextData != nil && e.contextUrgency(contextData) > 0.5 {
		reasons = append(reasons, "High urgency detected in recent context")
	}

	if task.Priority == config.PriorityUrgent {
		reasons = append(reasons, "Marked as urgent priority")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("AI confidence score: %.2f", score))
	}

	return strings.Join(reasons, "; ")
}
