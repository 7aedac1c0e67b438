package ai

import "smarttodo/backend/types"

// AnalyzeContext mines one context entry for task-relevant signal. A nil
// entry or empty content short-circuits to the zero-valued analysis without
// invoking the extractors: absence of signal is itself meaningful, so there
// is no error path.
func (e *Engine) AnalyzeContext(entry *types.ContextEntry) types.ContextAnalysis {
	analysis := types.ContextAnalysis{
		Keywords:           []string{},
		PotentialTasks:     []string{},
		DeadlinesMentioned: []string{},
		PeopleMentioned:    []string{},
		ProjectsMentioned:  []string{},
	}

	if entry == nil || entry.Content == "" {
		return analysis
	}

	text := entry.Content

	analysis.SentimentScore = sentimentScore(text)
	analysis.UrgencyScore = urgencyScore(text)
	analysis.Keywords = extractKeywords(text)
	analysis.PotentialTasks = extractPotentialTasks(text)
	analysis.DeadlinesMentioned = extractDeadlines(text)
	analysis.PeopleMentioned = extractPeople(text)
	analysis.ProjectsMentioned = extractProjects(text)

	return analysis
}
