package ai

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"smarttodo/backend/config"
	"smarttodo/backend/types"
)

const (
	maxScheduledTasks    = 10
	scheduleBreakMinutes = 15
)

// timeMentionPatterns match clock times, relative days and weeks, weekday
// names, and day-month dates, in that order.
var timeMentionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2}:\d{2}(?:\s?(?:AM|PM))?)`),
	regexp.MustCompile(`(?i)(tomorrow|today|yesterday)`),
	regexp.MustCompile(`(?i)(next week|this week|last week)`),
	regexp.MustCompile(`(?i)(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
	regexp.MustCompile(`(?i)(\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec))`),
}

// ExtractTimeMentions pulls time-related phrases out of free-form text.
func ExtractTimeMentions(text string) []string {
	mentions := []string{}
	for _, p := range timeMentionPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			mentions = append(mentions, m[1])
		}
	}
	return mentions
}

// WorkloadScore estimates current workload in [0, 1] from the number of
// pending tasks, weighting high and urgent ones extra.
func WorkloadScore(tasks []types.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}

	pending := 0
	highPriority := 0
	for _, t := range tasks {
		if t.Status != config.StatusPending {
			continue
		}
		pending++
		if t.Priority == config.PriorityHigh || t.Priority == config.PriorityUrgent {
			highPriority++
		}
	}

	return clamp(float64(pending)*0.1+float64(highPriority)*0.2, 0, 1)
}

// SuggestSchedule lays the highest-priority tasks out back to back from now,
// using each task's estimated duration (one hour when unknown) and a
// fifteen-minute break between slots. At most ten tasks are scheduled.
func (e *Engine) SuggestSchedule(tasks []types.Task) types.ScheduleSuggestion {
	if len(tasks) == 0 {
		return types.ScheduleSuggestion{Schedule: []types.ScheduleSlot{}, Reasoning: "No tasks to schedule"}
	}

	ordered := make([]types.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].AIPriorityScore > ordered[j].AIPriorityScore
	})

	if len(ordered) > maxScheduledTasks {
		ordered = ordered[:maxScheduledTasks]
	}

	schedule := make([]types.ScheduleSlot, 0, len(ordered))
	current := e.now()
	for _, task := range ordered {
		minutes := defaultDurationMinutes
		if task.EstimatedDuration != nil && *task.EstimatedDuration > 0 {
			minutes = *task.EstimatedDuration
		}
		end := current.Add(time.Duration(minutes) * time.Minute)

		schedule = append(schedule, types.ScheduleSlot{
			TaskID:         task.ID,
			Title:          task.Title,
			SuggestedStart: current,
			SuggestedEnd:   end,
			PriorityScore:  task.AIPriorityScore,
		})

		current = end.Add(scheduleBreakMinutes * time.Minute)
	}

	return types.ScheduleSuggestion{
		Schedule:  schedule,
		Reasoning: fmt.Sprintf("Scheduled %d tasks based on priority and estimated duration", len(schedule)),
	}
}
