// Package ai implements the context analysis and task scoring engine:
// keyword and pattern extraction over free-form context, multi-signal task
// prioritization, keyword-taxonomy categorization, deadline estimation,
// description enhancement, and task suggestion synthesis.
//
// Every operation is a pure function of its arguments. The engine holds no
// mutable state; all rule tables (stop words, urgency keywords, sentiment
// lexicon, pattern cascades, category taxonomy) are package-level read-only
// values, so a single Engine is safe for concurrent use.
package ai

import "time"

// Engine exposes the analysis and scoring operations. Construct one with
// New and share it; there is no package-level instance.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the engine's time source. Deadline proximity and
// deadline suggestions depend on the current time; tests pin it here.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New returns a ready Engine.
func New(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
