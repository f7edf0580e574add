package placement

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/allotment/advice"
	"github.com/katalvlaran/allotment/catalog"
	"github.com/katalvlaran/allotment/companion"
	"github.com/katalvlaran/allotment/grid"
)

// Result is the validation report for one proposed placement.
type Result struct {
	Valid         bool              `json:"isValid"`
	Compatibility companion.Verdict `json:"compatibility"`
	Warnings      []advice.Warning  `json:"warnings"`
	Suggestions   []string          `json:"suggestions"`
}

// Validate checks planting vegID into target within plot.
// A nil plot is treated as a bed with no neighbors.
// Complexity: O(n) for n cells in plot.
func Validate(cat catalog.Lookup, vegID string, target grid.Cell, plot *grid.Plot) Result {
	res := Result{
		Compatibility: companion.Neutral,
		Warnings:      []advice.Warning{},
		Suggestions:   []string{},
	}
	if _, ok := lookup(cat, vegID); !ok {
		res.Warnings = append(res.Warnings, advice.Warning{
			Kind:        advice.KindUnknown,
			Severity:    advice.SeverityError,
			Message:     fmt.Sprintf("Unknown vegetable %q", vegID),
			VegetableID: vegID,
		})
		return res
	}
	res.Valid = true
	name := displayName(cat, vegID)

	var friends []string
	for _, n := range plantedNeighbors(plot, target) {
		switch companion.Check(cat, vegID, n.VegetableID) {
		case companion.Bad:
			res.Compatibility = companion.Bad
			res.Warnings = append(res.Warnings, advice.Warning{
				Kind:     advice.KindAvoid,
				Severity: advice.SeverityWarning,
				Message: fmt.Sprintf("%s should not be planted next to %s at row %d, column %d",
					name, displayName(cat, n.VegetableID), n.Row+1, n.Col+1),
				VegetableID: vegID,
				RelatedID:   n.VegetableID,
			})
		case companion.Good:
			if friend := displayName(cat, n.VegetableID); !slices.Contains(friends, friend) {
				friends = append(friends, friend)
			}
		}
	}
	if res.Compatibility == companion.Bad || len(friends) == 0 {
		return res
	}

	res.Compatibility = companion.Good
	res.Suggestions = append(res.Suggestions,
		fmt.Sprintf("%s grows well next to %s", name, strings.Join(friends, ", ")))
	return res
}

// ScoreOptions sets the companion score scale. Good must be positive and
// Bad negative for a single neighbor to move the score off Base.
type ScoreOptions struct {
	Base int
	Good int
	Bad  int
}

// DefaultScoreOptions returns Base=50, Good=+15, Bad=-15.
func DefaultScoreOptions() ScoreOptions {
	return ScoreOptions{Base: 50, Good: 15, Bad: -15}
}

// CompanionScore scores vegID at target with DefaultScoreOptions.
func CompanionScore(cat catalog.Lookup, vegID string, target grid.Cell, plot *grid.Plot) int {
	return CompanionScoreWith(cat, vegID, target, plot, DefaultScoreOptions())
}

// CompanionScoreWith scores vegID at target and clamps the result to [0, 100].
// With no planted neighbors the score is exactly opts.Base.
// Complexity: O(n) for n cells in plot.
func CompanionScoreWith(cat catalog.Lookup, vegID string, target grid.Cell, plot *grid.Plot, opts ScoreOptions) int {
	score := opts.Base
	for _, n := range plantedNeighbors(plot, target) {
		switch companion.Check(cat, vegID, n.VegetableID) {
		case companion.Good:
			score += opts.Good
		case companion.Bad:
			score += opts.Bad
		}
	}
	return clamp(score, 0, 100)
}

func plantedNeighbors(plot *grid.Plot, target grid.Cell) []grid.Cell {
	if plot == nil {
		return nil
	}
	return plot.PlantedNeighbors(target)
}

func lookup(cat catalog.Lookup, id string) (catalog.Vegetable, bool) {
	if cat == nil {
		return catalog.Vegetable{}, false
	}
	return cat.Get(id)
}

func displayName(cat catalog.Lookup, id string) string {
	if v, ok := lookup(cat, id); ok && v.Name != "" {
		return v.Name
	}
	return id
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
