package ai

import (
	"testing"
	"time"

	"smarttodo/backend/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Thursday, so deadlines a few days out stay clear of the weekend logic
// exercised in the deadline tests.
var testNow = time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return New(WithClock(func() time.Time { return testNow }))
}

func deadlineIn(d time.Duration) *time.Time {
	t := testNow.Add(d)
	return &t
}

func TestPrioritizeTasksEmptyInput(t *testing.T) {
	engine := newTestEngine()

	results := engine.PrioritizeTasks(nil, nil)

	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestPriorityScoreBaseOnly(t *testing.T) {
	engine := newTestEngine()

	cases := map[string]float64{
		"low":     0.2 * 0.3,
		"medium":  0.5 * 0.3,
		"high":    0.8 * 0.3,
		"urgent":  1.0 * 0.3,
		"bogus":   0.5 * 0.3, // unknown priorities fall back to medium
		"":        0.5 * 0.3,
	}

	for priority, want := range cases {
		task := types.Task{ID: "t1", Title: "write notes", Priority: priority}
		results := engine.PrioritizeTasks([]types.Task{task}, nil)

		require.Len(t, results, 1)
		assert.InDelta(t, want, results[0].AIPriorityScore, 1e-9, "priority %q", priority)
	}
}

func TestPriorityScoreDeadlineBuckets(t *testing.T) {
	engine := newTestEngine()
	base := 0.5 * 0.3 // medium

	cases := []struct {
		name string
		in   time.Duration
		want float64
	}{
		{"one day out", 24 * time.Hour, base + 0.4},
		{"two days out", 48 * time.Hour, base + 0.3},
		{"three days out", 72 * time.Hour, base + 0.3},
		{"seven days out", 7 * 24 * time.Hour, base + 0.2},
		{"eight days out", 8 * 24 * time.Hour, base + 0.1},
		{"overdue", -48 * time.Hour, base + 0.4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := types.Task{ID: "t1", Title: "ship release", Priority: "medium", Deadline: deadlineIn(tc.in)}
			results := engine.PrioritizeTasks([]types.Task{task}, nil)

			require.Len(t, results, 1)
			assert.InDelta(t, tc.want, results[0].AIPriorityScore, 1e-9)
		})
	}
}

func TestPriorityScoreContextRelevance(t *testing.T) {
	engine := newTestEngine()
	task := types.Task{ID: "t1", Title: "fix the billing report", Priority: "medium"}

	baseline := engine.PrioritizeTasks([]types.Task{task}, nil)
	require.Len(t, baseline, 1)
	assert.InDelta(t, 0.15, baseline[0].AIPriorityScore, 1e-9)

	// Every task token appears in the context and the context reads urgent,
	// so relevance is the 0.5 overlap cap plus the 0.3 urgency bonus.
	entry := &types.ContextEntry{
		Content:     "urgent asap immediately deadline due emergency critical fix the billing report",
		ContextType: "note",
	}
	scored := engine.PrioritizeTasks([]types.Task{task}, entry)
	require.Len(t, scored, 1)
	assert.InDelta(t, 0.15+0.8*0.3, scored[0].AIPriorityScore, 1e-9)
	assert.Greater(t, scored[0].AIPriorityScore, baseline[0].AIPriorityScore)
	assert.Contains(t, scored[0].Reasoning, "High urgency detected in recent context")
}

func TestPriorityScoreClampedToOne(t *testing.T) {
	engine := newTestEngine()
	task := types.Task{
		ID:       "t1",
		Title:    "urgent fix",
		Priority: "urgent",
		Deadline: deadlineIn(2 * time.Hour),
	}
	entry := &types.ContextEntry{Content: "urgent fix asap, deadline due immediately, critical emergency"}

	results := engine.PrioritizeTasks([]types.Task{task}, entry)

	require.Len(t, results, 1)
	assert.LessOrEqual(t, results[0].AIPriorityScore, 1.0)
	assert.Equal(t, "urgent", results[0].SuggestedPriority)
}

func TestContextUrgencyPrefersStoredScore(t *testing.T) {
	engine := newTestEngine()

	processed := &types.ContextEntry{Content: "a calm note", UrgencyScore: 0.9, Processed: true}
	assert.InDelta(t, 0.9, engine.contextUrgency(processed), 1e-9)

	// Stored score wins even when the raw content would read urgent.
	stale := &types.ContextEntry{Content: "urgent asap deadline due critical", UrgencyScore: 0, Processed: true}
	assert.Zero(t, engine.contextUrgency(stale))

	raw := &types.ContextEntry{Content: "urgent asap immediately deadline", Processed: false}
	assert.InDelta(t, 4.0/7.0, engine.contextUrgency(raw), 1e-9)
}

func TestPrioritizeTasksStableOnTies(t *testing.T) {
	engine := newTestEngine()
	tasks := []types.Task{
		{ID: "a", Title: "first", Priority: "medium"},
		{ID: "b", Title: "second", Priority: "medium"},
		{ID: "c", Title: "third", Priority: "urgent"},
		{ID: "d", Title: "fourth", Priority: "medium"},
	}

	results := engine.PrioritizeTasks(tasks, nil)

	require.Len(t, results, 4)
	assert.Equal(t, "c", results[0].TaskID)
	assert.Equal(t, []string{"a", "b", "d"}, []string{results[1].TaskID, results[2].TaskID, results[3].TaskID})
}

func TestScoreToPriorityBuckets(t *testing.T) {
	assert.Equal(t, "urgent", scoreToPriority(0.8))
	assert.Equal(t, "urgent", scoreToPriority(1.0))
	assert.Equal(t, "high", scoreToPriority(0.79))
	assert.Equal(t, "high", scoreToPriority(0.6))
	assert.Equal(t, "medium", scoreToPriority(0.59))
	assert.Equal(t, "medium", scoreToPriority(0.4))
	assert.Equal(t, "low", scoreToPriority(0.39))
	assert.Equal(t, "low", scoreToPriority(0))
}

func TestPriorityReasoning(t *testing.T) {
	engine := newTestEngine()

	t.Run("deadline very close", func(t *testing.T) {
		task := types.Task{ID: "t1", Title: "ship", Priority: "medium", Deadline: deadlineIn(12 * time.Hour)}
		results := engine.PrioritizeTasks([]types.Task{task}, nil)
		require.Len(t, results, 1)
		assert.Equal(t, "Deadline is very close (within 1 day)", results[0].Reasoning)
	})

	t.Run("deadline approaching", func(t *testing.T) {
		task := types.Task{ID: "t1", Title: "ship", Priority: "medium", Deadline: deadlineIn(60 * time.Hour)}
		results := engine.PrioritizeTasks([]types.Task{task}, nil)
		require.Len(t, results, 1)
		assert.Equal(t, "Deadline approaching (within 3 days)", results[0].Reasoning)
	})

	t.Run("marked urgent", func(t *testing.T) {
		task := types.Task{ID: "t1", Title: "ship", Priority: "urgent"}
		results := engine.PrioritizeTasks([]types.Task{task}, nil)
		require.Len(t, results, 1)
		assert.Equal(t, "Marked as urgent priority", results[0].Reasoning)
	})

	t.Run("numeric fallback", func(t *testing.T) {
		task := types.Task{ID: "t1", Title: "ship", Priority: "medium"}
		results := engine.PrioritizeTasks([]types.Task{task}, nil)
		require.Len(t, results, 1)
		assert.Equal(t, "AI confidence score: 0.15", results[0].Reasoning)
	})

	t.Run("reasons join in fixed order", func(t *testing.T) {
		task := types.Task{ID: "t1", Title: "ship", Priority: "urgent", Deadline: deadlineIn(6 * time.Hour)}
		entry := &types.ContextEntry{Content: "x", UrgencyScore: 0.9, Processed: true}
		results := engine.PrioritizeTasks([]types.Task{task}, entry)
		require.Len(t, results, 1)
		assert.Equal(t,
			"Deadline is very close (within 1 day); High urgency detected in recent context; Marked as urgent priority",
			results[0].Reasoning)
	})
}

func TestPrioritizeTasksDeterminism(t *testing.T) {
	engine := newTestEngine()
	tasks := []types.Task{
		{ID: "a", Title: "review budget", Priority: "high", Deadline: deadlineIn(48 * time.Hour)},
		{ID: "b", Title: "call the bank", Priority: "low"},
	}
	entry := &types.ContextEntry{Content: "urgent: review budget asap, payment due"}

	first := engine.PrioritizeTasks(tasks, entry)
	second := engine.PrioritizeTasks(tasks, entry)

	require.Equal(t, first, second)
}
