package ai

import (
	"regexp"
	"strings"
)

// Extraction caps per rule set.
const (
	maxPotentialTasks = 5
	maxDeadlines      = 3
	maxPeople         = 5
	maxProjects       = 3
)

// The four pattern cascades below are ordered rule sets: patterns are
// applied in declaration order, matches are concatenated across patterns,
// and only then is the result truncated to its cap. Reordering a cascade
// changes the output, so the order is part of the contract.

// Task phrase introducers; group 1 captures the rest of the clause up to
// the next period or end of text.
var taskPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)need to (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)should (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)have to (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)must (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)remember to (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)don't forget to (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)action item:? (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)todo:? (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)task:? (.+?)(?:\.|$)`),
}

// Deadline phrase introducers, same clause-capture rule.
var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)due (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)deadline (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)by (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)before (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)until (.+?)(?:\.|$)`),
}

// People mentions: @handles and the word following a contact introducer.
var peoplePatterns = []*regexp.Regexp{
	regexp.MustCompile(`@(\w+)`),
	regexp.MustCompile(`(?i)from (\w+)`),
	regexp.MustCompile(`(?i)with (\w+)`),
	regexp.MustCompile(`(?i)contact (\w+)`),
}

// Project mentions: the word around "project" and #tags.
var projectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)project (\w+)`),
	regexp.MustCompile(`(?i)(\w+) project`),
	regexp.MustCompile(`#(\w+)`),
}

// applyPatterns runs a cascade over the text, collecting trimmed group-1
// captures in pattern order, non-overlapping per pattern, truncated to max.
func applyPatterns(patterns []*regexp.Regexp, text string, max int) []string {
	var out []string
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			out = append(out, strings.TrimSpace(m[1]))
		}
	}
	if len(out) > max {
		out = out[:max]
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// applyPatternsUnique is applyPatterns with case-insensitive deduplication;
// first occurrence wins so the result is deterministic.
func applyPatternsUnique(patterns []*regexp.Regexp, text string, max int) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			match := strings.TrimSpace(m[1])
			key := strings.ToLower(match)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, match)
		}
	}
	if len(out) > max {
		out = out[:max]
	}
	return out
}

func extractPotentialTasks(text string) []string {
	return applyPatterns(taskPatterns, text, maxPotentialTasks)
}

func extractDeadlines(text string) []string {
	return applyPatterns(deadlinePatterns, text, maxDeadlines)
}

func extractPeople(text string) []string {
	return applyPatternsUnique(peoplePatterns, text, maxPeople)
}

func extractProjects(text string) []string {
	return applyPatternsUnique(projectPatterns, text, maxProjects)
}
