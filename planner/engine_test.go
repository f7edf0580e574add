package planner_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/allotment/catalog"
	"github.com/katalvlaran/allotment/companion"
	"github.com/katalvlaran/allotment/gapfill"
	"github.com/katalvlaran/allotment/grid"
	"github.com/katalvlaran/allotment/placement"
	"github.com/katalvlaran/allotment/planner"
	"github.com/katalvlaran/allotment/rotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBed(t *testing.T, plants map[[2]int]string) (*grid.Plot, grid.Cell) {
	t.Helper()
	p, err := grid.NewPlot("north-bed", 3, 3)
	require.NoError(t, err)
	for rc, id := range plants {
		require.NoError(t, p.Plant(rc[0], rc[1], id))
	}
	center, _ := p.Cell(1, 1)
	return p, center
}

// TestEngine_Scenario runs the carrots/onions/parsnips walk through the facade.
func TestEngine_Scenario(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := planner.New(catalog.Default(), planner.WithLogger(log))

	p, center := newBed(t, map[[2]int]string{{0, 1}: "onions"})
	res := e.ValidatePlacement("carrots", center, p)
	assert.Equal(t, companion.Good, res.Compatibility)
	assert.Greater(t, e.CompanionScore("carrots", center, p), 50)
	assert.Contains(t, buf.String(), "placement validated")
	assert.Contains(t, buf.String(), "vegetable=carrots")

	require.NoError(t, p.Plant(0, 1, "parsnips"))
	res = e.ValidatePlacement("carrots", center, p)
	assert.Equal(t, companion.Bad, res.Compatibility)
	assert.Less(t, e.CompanionScore("carrots", center, p), 50)

	assert.Len(t, e.Adjacent(center, p), 8)
	assert.Empty(t, e.Adjacent(center, nil))
}

// TestEngine_Passthrough checks the remaining queries delegate faithfully.
func TestEngine_Passthrough(t *testing.T) {
	e := planner.New(catalog.Default())
	assert.Same(t, catalog.Default(), e.Catalog())
	assert.Equal(t, companion.Bad, e.Compatibility("parsnips", "carrots"))
	assert.Contains(t, e.SuggestedCompanions("carrots"), "leeks")
	assert.Contains(t, e.AvoidedPlants("carrots"), "parsnips")

	g, ok := e.RotationGroup("kale")
	require.True(t, ok)
	assert.Equal(t, rotation.Brassicas, g)

	history := []rotation.Entry{{PlotID: "north-bed", Year: 2025, Group: rotation.Brassicas}}
	assert.Equal(t, rotation.Roots, e.SuggestRotation("north-bed", 2026, history))
	require.NotNil(t, e.CheckRotation("kale", "north-bed", 2026, history))
	assert.Nil(t, e.CheckRotation("carrots", "north-bed", 2026, history))
	assert.Equal(t, 10, e.RotationScore("kale", "north-bed", 2026, history))
	assert.Equal(t, 100, e.RotationScore("carrots", "north-bed", 2026, history))

	p, center := newBed(t, map[[2]int]string{{0, 0}: "kale", {0, 1}: "cabbage", {2, 2}: "peas"})
	g, ok = e.DominantGroup(p)
	require.True(t, ok)
	assert.Equal(t, rotation.Brassicas, g)
	entry, ok := e.BuildHistoryEntry(p, 2026)
	require.True(t, ok)
	assert.Equal(t, []string{"kale", "cabbage", "peas"}, entry.Vegetables)

	rows := e.HistorySummary("north-bed", 2026, rotation.Upsert(history, entry))
	require.Len(t, rows, planner.DefaultHistoryYears)
	assert.Equal(t, 2023, rows[0].Year)
	assert.True(t, rows[2].Recorded)

	fillers := e.GapFillers(center, p, 5)
	require.NotEmpty(t, fillers)
	assert.LessOrEqual(t, len(fillers), 5)
}

// TestEngine_Options applies tunables and rejects meaningless ones.
func TestEngine_Options(t *testing.T) {
	e := planner.New(catalog.Default(),
		planner.WithScoreOptions(placement.ScoreOptions{Base: 50, Good: 40, Bad: -5}),
		planner.WithGapFillOptions(gapfill.Options{QuickGrowDays: 60, QuickSlots: 1, SlowSlots: 0}),
		planner.WithHistoryYears(5),
	)
	p, center := newBed(t, map[[2]int]string{{0, 1}: "onions", {1, 0}: "leeks"})
	assert.Equal(t, 100, e.CompanionScore("carrots", center, p), "clamped at 100")
	assert.Len(t, e.GapFillers(center, p, 5), 1)
	assert.Len(t, e.HistorySummary("north-bed", 2026, nil), 5)

	assert.Panics(t, func() { planner.New(nil) })
	assert.Panics(t, func() { planner.WithLogger(nil) })
	assert.Panics(t, func() { planner.WithScoreOptions(placement.ScoreOptions{Base: 50, Good: 0, Bad: -1}) })
	assert.Panics(t, func() { planner.WithGapFillOptions(gapfill.Options{QuickSlots: -1}) })
	assert.Panics(t, func() { planner.WithHistoryYears(0) })
}

// TestEngine_PlotReport aggregates per-cell scores and conflicts.
func TestEngine_PlotReport(t *testing.T) {
	e := planner.New(catalog.Default())
	p, _ := newBed(t, map[[2]int]string{
		{0, 1}: "onions",
		{1, 1}: "carrots",
		{2, 1}: "parsnips",
	})

	r, err := e.PlotReport(p)
	require.NoError(t, err)
	assert.Equal(t, "north-bed", r.PlotID)
	assert.Equal(t, 3, r.Planted)
	assert.Equal(t, 6, r.Empty)
	assert.Equal(t, 1, r.ConflictPairs)
	assert.Equal(t, rotation.Roots, r.DominantGroup)

	byVeg := map[string]planner.CellReport{}
	for _, c := range r.Cells {
		byVeg[c.VegetableID] = c
	}
	assert.Equal(t, 65, byVeg["onions"].Score)
	assert.Equal(t, 50, byVeg["carrots"].Score)
	assert.Equal(t, 35, byVeg["parsnips"].Score)
	assert.Equal(t, []string{"parsnips"}, byVeg["carrots"].Conflicts)
	assert.Equal(t, companion.Bad, byVeg["carrots"].Compatibility)
	assert.True(t, byVeg["onions"].Known)

	assert.InDelta(t, 50.0, r.MeanScore, 1e-9)
	assert.InDelta(t, 50.0, r.MedianScore, 1e-9)
	assert.InDelta(t, 35.0, r.MinScore, 1e-9)
}

// TestEngine_PlotReportEmpty leaves statistics at zero.
func TestEngine_PlotReportEmpty(t *testing.T) {
	e := planner.New(catalog.Default())
	p, _ := newBed(t, nil)
	r, err := e.PlotReport(p)
	require.NoError(t, err)
	assert.Zero(t, r.Planted)
	assert.Equal(t, 9, r.Empty)
	assert.Zero(t, r.MeanScore)
	assert.Empty(t, r.DominantGroup)

	r, err = e.PlotReport(nil)
	require.NoError(t, err)
	assert.Empty(t, r.Cells)
}
