package planner

import (
	"log/slog"

	"github.com/katalvlaran/allotment/gapfill"
	"github.com/katalvlaran/allotment/placement"
)

// Option customizes an Engine before it is returned by New.
type Option func(*Engine)

// WithLogger routes engine Debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("planner: WithLogger(nil)")
	}
	return func(e *Engine) {
		e.log = l
	}
}

// WithScoreOptions overrides the companion score scale. Panics unless
// Good > 0 and Bad < 0.
func WithScoreOptions(o placement.ScoreOptions) Option {
	if o.Good <= 0 || o.Bad >= 0 {
		panic("planner: WithScoreOptions needs Good > 0 and Bad < 0")
	}
	return func(e *Engine) {
		e.score = o
	}
}

// WithGapFillOptions overrides the gap-filler tunables. Panics on negative
// values.
func WithGapFillOptions(o gapfill.Options) Option {
	if o.QuickGrowDays < 0 || o.QuickSlots < 0 || o.SlowSlots < 0 {
		panic("planner: WithGapFillOptions with negative value")
	}
	return func(e *Engine) {
		e.gap = o
	}
}

// WithHistoryYears sets how many past years HistorySummary reports.
// Panics if n < 1.
func WithHistoryYears(n int) Option {
	if n < 1 {
		panic("planner: WithHistoryYears(n < 1)")
	}
	return func(e *Engine) {
		e.historyYears = n
	}
}
