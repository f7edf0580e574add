// Package planner binds the garden-planning engine to one catalog and one
// set of tunables, giving UI and CLI hosts a single entry point.
//
// Every method is a thin, deterministic call into the catalog, grid,
// companion, placement, rotation and gapfill packages. The Engine holds no
// mutable state after New returns, so one Engine may serve concurrent
// callers. Plots and histories are passed in and never modified.
//
// Options (functional, validated at construction; invalid values panic):
//
//	WithLogger(*slog.Logger)            Debug records for validations and advice.
//	WithScoreOptions(placement.ScoreOptions)
//	WithGapFillOptions(gapfill.Options)
//	WithHistoryYears(n)                 rows returned by HistorySummary.
//
// PlotReport adds a bed-level view: the companion score and avoid conflicts
// of every planted cell, summary statistics over those scores and the
// dominant rotation group.
package planner
