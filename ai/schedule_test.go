package ai

import (
	"fmt"
	"testing"
	"time"

	"smarttodo/backend/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestExtractTimeMentions(t *testing.T) {
	mentions := ExtractTimeMentions("Meet at 2:30 PM tomorrow or monday, maybe the 5th jan")

	assert.Equal(t, []string{"2:30 PM", "tomorrow", "monday", "5th jan"}, mentions)
}

func TestExtractTimeMentionsEmpty(t *testing.T) {
	mentions := ExtractTimeMentions("nothing temporal here")

	require.NotNil(t, mentions)
	assert.Empty(t, mentions)
}

func TestWorkloadScore(t *testing.T) {
	assert.Zero(t, WorkloadScore(nil))
	assert.Zero(t, WorkloadScore([]types.Task{{Status: "completed", Priority: "high"}}))

	tasks := []types.Task{
		{Status: "pending", Priority: "low"},
		{Status: "pending", Priority: "medium"},
		{Status: "pending", Priority: "high"},
		{Status: "completed", Priority: "urgent"},
	}
	assert.InDelta(t, 3*0.1+1*0.2, WorkloadScore(tasks), 1e-9)
}

func TestWorkloadScoreCapsAtOne(t *testing.T) {
	tasks := make([]types.Task, 12)
	for i := range tasks {
		tasks[i] = types.Task{Status: "pending", Priority: "urgent"}
	}

	assert.InDelta(t, 1.0, WorkloadScore(tasks), 1e-9)
}

func TestSuggestScheduleEmpty(t *testing.T) {
	engine := newTestEngine()

	result := engine.SuggestSchedule(nil)

	require.NotNil(t, result.Schedule)
	assert.Empty(t, result.Schedule)
	assert.Equal(t, "No tasks to schedule", result.Reasoning)
}

func TestSuggestScheduleOrdersByScoreWithBreaks(t *testing.T) {
	engine := newTestEngine()
	tasks := []types.Task{
		{ID: "low", Title: "tidy desk", AIPriorityScore: 0.5},
		{ID: "high", Title: "ship release", AIPriorityScore: 0.9, EstimatedDuration: intPtr(30)},
	}

	result := engine.SuggestSchedule(tasks)

	require.Len(t, result.Schedule, 2)
	assert.Equal(t, "Scheduled 2 tasks based on priority and estimated duration", result.Reasoning)

	first := result.Schedule[0]
	assert.Equal(t, "high", first.TaskID)
	assert.Equal(t, testNow, first.SuggestedStart)
	assert.Equal(t, testNow.Add(30*time.Minute), first.SuggestedEnd)

	// Fifteen-minute break, then the default one-hour slot.
	second := result.Schedule[1]
	assert.Equal(t, "low", second.TaskID)
	assert.Equal(t, testNow.Add(45*time.Minute), second.SuggestedStart)
	assert.Equal(t, testNow.Add(105*time.Minute), second.SuggestedEnd)
}

func TestSuggestScheduleStableOnTiesAndCapped(t *testing.T) {
	engine := newTestEngine()
	tasks := make([]types.Task, 12)
	for i := range tasks {
		tasks[i] = types.Task{ID: fmt.Sprintf("t%d", i), Title: "task", AIPriorityScore: 0.5}
	}

	result := engine.SuggestSchedule(tasks)

	require.Len(t, result.Schedule, 10)
	for i, slot := range result.Schedule {
		assert.Equal(t, fmt.Sprintf("t%d", i), slot.TaskID)
	}
}

func TestSuggestScheduleDoesNotMutateInput(t *testing.T) {
	engine := newTestEngine()
	tasks := []types.Task{
		{ID: "a", AIPriorityScore: 0.1},
		{ID: "b", AIPriorityScore: 0.9},
	}

	_ = engine.SuggestSchedule(tasks)

	assert.Equal(t, "a", tasks[0].ID)
	assert.Equal(t, "b", tasks[1].ID)
}
