package planner

import (
	"log/slog"

	"github.com/katalvlaran/allotment/advice"
	"github.com/katalvlaran/allotment/catalog"
	"github.com/katalvlaran/allotment/companion"
	"github.com/katalvlaran/allotment/gapfill"
	"github.com/katalvlaran/allotment/grid"
	"github.com/katalvlaran/allotment/placement"
	"github.com/katalvlaran/allotment/rotation"
)

// DefaultHistoryYears is the HistorySummary window without WithHistoryYears.
const DefaultHistoryYears = 3

// Engine answers every planning query against one catalog.
type Engine struct {
	cat          *catalog.Catalog
	log          *slog.Logger
	score        placement.ScoreOptions
	gap          gapfill.Options
	historyYears int
}

// New returns an Engine over cat. Panics on a nil catalog.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	if cat == nil {
		panic("planner: New(nil catalog)")
	}
	e := &Engine{
		cat:          cat,
		log:          slog.Default(),
		score:        placement.DefaultScoreOptions(),
		gap:          gapfill.DefaultOptions(),
		historyYears: DefaultHistoryYears,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the reference table the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// Adjacent returns the Moore neighbors of cell within plot.
func (e *Engine) Adjacent(cell grid.Cell, plot *grid.Plot) []grid.Cell {
	if plot == nil {
		return nil
	}
	return plot.Neighbors(cell)
}

// Compatibility returns the symmetric verdict for a and b.
func (e *Engine) Compatibility(a, b string) companion.Verdict {
	return companion.Check(e.cat, a, b)
}

// SuggestedCompanions returns the companion list of id.
func (e *Engine) SuggestedCompanions(id string) []string {
	return companion.Suggested(e.cat, id)
}

// AvoidedPlants returns the avoid list of id.
func (e *Engine) AvoidedPlants(id string) []string {
	return companion.Avoided(e.cat, id)
}

// ValidatePlacement reports on planting vegID at cell.
func (e *Engine) ValidatePlacement(vegID string, cell grid.Cell, plot *grid.Plot) placement.Result {
	res := placement.Validate(e.cat, vegID, cell, plot)
	e.log.Debug("placement validated",
		slog.String("vegetable", vegID),
		slog.String("plot", plotID(plot)),
		slog.Int("row", cell.Row),
		slog.Int("col", cell.Col),
		slog.String("compatibility", string(res.Compatibility)),
		slog.Int("warnings", len(res.Warnings)))
	return res
}

// CompanionScore scores vegID at cell on the engine's scale, clamped to [0, 100].
func (e *Engine) CompanionScore(vegID string, cell grid.Cell, plot *grid.Plot) int {
	return placement.CompanionScoreWith(e.cat, vegID, cell, plot, e.score)
}

// RotationGroup returns the rotation group of vegID.
func (e *Engine) RotationGroup(vegID string) (rotation.Group, bool) {
	return rotation.GroupOf(e.cat, vegID)
}

// SuggestRotation returns the next group for plotID in year.
func (e *Engine) SuggestRotation(plotID string, year int, history []rotation.Entry) rotation.Group {
	return rotation.Suggest(plotID, year, history)
}

// CheckRotation returns a rotation warning for vegID, or nil.
func (e *Engine) CheckRotation(vegID, plotID string, year int, history []rotation.Entry) *advice.Warning {
	w := rotation.CheckViolation(e.cat, vegID, plotID, year, history)
	if w != nil {
		e.log.Debug("rotation conflict",
			slog.String("vegetable", vegID),
			slog.String("plot", plotID),
			slog.Int("year", year),
			slog.Int("conflictYear", w.Year),
			slog.String("severity", string(w.Severity)))
	}
	return w
}

// RotationScore rates vegID in plotID during year.
func (e *Engine) RotationScore(vegID, plotID string, year int, history []rotation.Entry) int {
	return rotation.Score(e.cat, vegID, plotID, year, history)
}

// DominantGroup returns the most common non-permanent group in plot.
func (e *Engine) DominantGroup(plot *grid.Plot) (rotation.Group, bool) {
	return rotation.DominantGroup(e.cat, plot)
}

// BuildHistoryEntry snapshots plot for year.
func (e *Engine) BuildHistoryEntry(plot *grid.Plot, year int) (rotation.Entry, bool) {
	return rotation.BuildEntry(e.cat, plot, year)
}

// HistorySummary returns the engine's history window for plotID before year.
func (e *Engine) HistorySummary(plotID string, year int, history []rotation.Entry) []rotation.YearSummary {
	return rotation.Summary(plotID, year, e.historyYears, history)
}

// GapFillers ranks vegetables for the empty cell in month.
func (e *Engine) GapFillers(cell grid.Cell, plot *grid.Plot, month int) []gapfill.Suggestion {
	out := gapfill.SuggestWith(e.cat, cell, plot, month, e.gap)
	e.log.Debug("gap fillers ranked",
		slog.String("plot", plotID(plot)),
		slog.Int("row", cell.Row),
		slog.Int("col", cell.Col),
		slog.Int("month", month),
		slog.Int("suggestions", len(out)))
	return out
}

func plotID(p *grid.Plot) string {
	if p == nil {
		return ""
	}
	return p.ID
}
