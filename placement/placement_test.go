package placement_test

import (
	"testing"

	"github.com/katalvlaran/allotment/advice"
	"github.com/katalvlaran/allotment/catalog"
	"github.com/katalvlaran/allotment/companion"
	"github.com/katalvlaran/allotment/grid"
	"github.com/katalvlaran/allotment/placement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bed returns a 3×3 plot with the given (row, col) → vegetable plantings.
func bed(t *testing.T, plants map[[2]int]string) (*grid.Plot, grid.Cell) {
	t.Helper()
	p, err := grid.NewPlot("bed", 3, 3)
	require.NoError(t, err)
	for rc, id := range plants {
		require.NoError(t, p.Plant(rc[0], rc[1], id))
	}
	center, _ := p.Cell(1, 1)
	return p, center
}

// ring plants id in all 8 cells around the center.
func ring(id string) map[[2]int]string {
	m := map[[2]int]string{}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r != 1 || c != 1 {
				m[[2]int{r, c}] = id
			}
		}
	}
	return m
}

// TestValidate_CarrotsScenario walks the onions/parsnips flip above the center cell.
func TestValidate_CarrotsScenario(t *testing.T) {
	cat := catalog.Default()

	p, center := bed(t, map[[2]int]string{{0, 1}: "onions"})
	res := placement.Validate(cat, "carrots", center, p)
	assert.True(t, res.Valid)
	assert.Equal(t, companion.Good, res.Compatibility)
	assert.NotEmpty(t, res.Suggestions)
	assert.Contains(t, res.Suggestions[0], "Onions")
	assert.Empty(t, res.Warnings)
	assert.Greater(t, placement.CompanionScore(cat, "carrots", center, p), 50)

	require.NoError(t, p.Plant(0, 1, "parsnips"))
	res = placement.Validate(cat, "carrots", center, p)
	assert.True(t, res.Valid, "bad neighbors warn but do not invalidate")
	assert.Equal(t, companion.Bad, res.Compatibility)
	require.NotEmpty(t, res.Warnings)
	assert.Equal(t, advice.KindAvoid, res.Warnings[0].Kind)
	assert.Equal(t, advice.SeverityWarning, res.Warnings[0].Severity)
	assert.Equal(t, "parsnips", res.Warnings[0].RelatedID)
	assert.Less(t, placement.CompanionScore(cat, "carrots", center, p), 50)
}

// TestValidate_UnknownVegetable is the only invalidating case.
func TestValidate_UnknownVegetable(t *testing.T) {
	p, center := bed(t, map[[2]int]string{{0, 1}: "onions"})
	res := placement.Validate(catalog.Default(), "triffid", center, p)
	assert.False(t, res.Valid)
	assert.Equal(t, companion.Neutral, res.Compatibility)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, advice.KindUnknown, res.Warnings[0].Kind)
	assert.True(t, res.Warnings[0].IsError())
	assert.Empty(t, res.Suggestions)
}

// TestValidate_NoNeighbors yields a neutral, silent report.
func TestValidate_NoNeighbors(t *testing.T) {
	cat := catalog.Default()
	p, center := bed(t, nil)
	res := placement.Validate(cat, "carrots", center, p)
	assert.True(t, res.Valid)
	assert.Equal(t, companion.Neutral, res.Compatibility)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Suggestions)
	assert.Equal(t, 50, placement.CompanionScore(cat, "carrots", center, p))

	res = placement.Validate(cat, "carrots", center, nil)
	assert.Equal(t, companion.Neutral, res.Compatibility)
	assert.Equal(t, 50, placement.CompanionScore(cat, "carrots", center, nil))
}

// TestValidate_NeutralNeighbors keeps neutral when nobody is related.
func TestValidate_NeutralNeighbors(t *testing.T) {
	p, center := bed(t, map[[2]int]string{{0, 0}: "squash", {2, 2}: "okra"})
	res := placement.Validate(catalog.Default(), "carrots", center, p)
	assert.Equal(t, companion.Neutral, res.Compatibility)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Suggestions)
}

// TestValidate_MixedNeighbors lets one bad neighbor override good ones and
// reports every offender.
func TestValidate_MixedNeighbors(t *testing.T) {
	p, center := bed(t, map[[2]int]string{
		{0, 1}: "onions",
		{1, 0}: "parsnips",
		{2, 1}: "parsnips",
	})
	res := placement.Validate(catalog.Default(), "carrots", center, p)
	assert.Equal(t, companion.Bad, res.Compatibility)
	assert.Len(t, res.Warnings, 2)
	assert.Empty(t, res.Suggestions)
}

// TestValidate_GoodNamesCoalesced names each distinct companion once.
func TestValidate_GoodNamesCoalesced(t *testing.T) {
	p, center := bed(t, map[[2]int]string{
		{0, 0}: "onions",
		{0, 2}: "onions",
		{2, 0}: "leeks",
	})
	res := placement.Validate(catalog.Default(), "carrots", center, p)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "Carrots grows well next to Onions, Leeks", res.Suggestions[0])
}

// TestCompanionScore_Clamp bounds fully surrounded cells to [0, 100].
func TestCompanionScore_Clamp(t *testing.T) {
	cat := catalog.Default()

	p, center := bed(t, ring("parsnips"))
	assert.Equal(t, 0, placement.CompanionScore(cat, "carrots", center, p))

	p, center = bed(t, ring("onions"))
	assert.Equal(t, 100, placement.CompanionScore(cat, "carrots", center, p))
}

// TestCompanionScoreWith applies a custom scale.
func TestCompanionScoreWith(t *testing.T) {
	cat := catalog.Default()
	p, center := bed(t, map[[2]int]string{{0, 1}: "onions", {1, 0}: "parsnips"})

	opts := placement.ScoreOptions{Base: 50, Good: 5, Bad: -20}
	assert.Equal(t, 35, placement.CompanionScoreWith(cat, "carrots", center, p, opts))
	assert.Equal(t, 50, placement.CompanionScore(cat, "carrots", center, p), "symmetric defaults cancel")
}
