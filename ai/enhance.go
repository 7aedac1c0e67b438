package ai

import (
	"strings"

	"smarttodo/backend/types"
)

// enhanceConfidence is fixed: enhancement is templated, not generated.
const enhanceConfidence = 0.6

const maxContextSentences = 2

// EnhanceDescription augments a task's description. A missing description
// is synthesized from the title with a generic three-step plan; when a
// context entry is supplied, up to two of its sentences that share tokens
// with the task text are appended as notes. AddedContext reports whether
// context was supplied at all, matched or not.
func (e *Engine) EnhanceDescription(title, description string, contextData *types.ContextEntry) types.EnhancementResult {
	enhanced := description
	if enhanced == "" {
		enhanced = "Task: " + title + "\n\nSuggested steps:\n1. Plan the approach\n2. Execute the task\n3. Review and finalize"
	}

	if contextData != nil {
		if notes := relevantContext(title, description, contextData.Content); notes != "" {
			enhanced += "\n\nContext notes:\n" + notes
		}
	}

	return types.EnhancementResult{
		EnhancedDescription: enhanced,
		Confidence:          enhanceConfidence,
		AddedContext:        contextData != nil,
	}
}

// relevantContext picks the first sentences of the context text whose raw
// token set intersects the task's, preserving original sentence order.
func relevantContext(title, description, contextText string) string {
	taskTokens := rawTokenSet(title + " " + description)
	if len(taskTokens) == 0 {
		return ""
	}

	var relevant []string
	for _, sentence := range strings.Split(contextText, ".") {
		if len(relevant) == maxContextSentences {
			break
		}
		if intersects(taskTokens, rawTokenSet(sentence)) {
			relevant = append(relevant, strings.TrimSpace(sentence))
		}
	}

	return strings.Join(relevant, ". ")
}
