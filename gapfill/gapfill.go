// Package gapfill recommends vegetables for an empty bed cell, favoring
// fast, compatible crops that keep the bed productive between slower ones.
//
// Every catalog vegetable is considered. A candidate that is antagonistic to
// any planted neighbor of the cell is dropped outright. Survivors score
//
//	50 base
//	+25 quick grower (max days to harvest <= 60)
//	+20 can be sown outdoors or transplanted this month
//	+15 at least one planted neighbor is a companion
//	+10 beginner difficulty
//
// which ranges from 50 to 120 and is not clamped. Results are
// ranked by score (ties keep catalog order) and then cut to the three best
// quick growers followed by the two best others.
package gapfill

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/allotment/catalog"
	"github.com/katalvlaran/allotment/companion"
	"github.com/katalvlaran/allotment/grid"
)

// Source is the catalog view the recommender needs. *catalog.Catalog
// implements it.
type Source interface {
	catalog.Lookup
	All() []catalog.Vegetable
}

// Suggestion is one ranked recommendation with a single human-readable reason.
type Suggestion struct {
	VegetableID string `json:"vegetableId"`
	Reason      string `json:"reason"`
	Score       int    `json:"score"`
	QuickGrow   bool   `json:"quickGrow"`
	CanPlantNow bool   `json:"canPlantNow"`
}

// Options tunes the recommender.
type Options struct {
	// QuickGrowDays is the largest max days-to-harvest counted as quick.
	QuickGrowDays int
	// QuickSlots caps how many quick growers lead the result.
	QuickSlots int
	// SlowSlots caps how many other vegetables follow them.
	SlowSlots int
}

// DefaultOptions returns QuickGrowDays=60, QuickSlots=3, SlowSlots=2.
func DefaultOptions() Options {
	return Options{QuickGrowDays: 60, QuickSlots: 3, SlowSlots: 2}
}

const (
	baseScore       = 50
	quickBonus      = 25
	plantNowBonus   = 20
	companionBonus  = 15
	beginnerBonus   = 10
	fallbackReason  = "Suitable for this spot"
	plantNowReason  = "Good time to plant"
	companionReason = "Good companion for %s"
	quickReason     = "Quick harvest in %d-%d days"
)

// Suggest ranks gap fillers for empty in plot during month with DefaultOptions.
func Suggest(src Source, empty grid.Cell, plot *grid.Plot, month int) []Suggestion {
	return SuggestWith(src, empty, plot, month, DefaultOptions())
}

// SuggestWith ranks gap fillers for empty in plot during month.
// Complexity: O(V·k + V log V) for V vegetables and k planted neighbors.
func SuggestWith(src Source, empty grid.Cell, plot *grid.Plot, month int, opts Options) []Suggestion {
	if src == nil {
		return nil
	}
	var neighbors []grid.Cell
	if plot != nil {
		neighbors = plot.PlantedNeighbors(empty)
	}

	var ranked []Suggestion
	for _, v := range src.All() {
		s, ok := evaluate(src, v, neighbors, month, opts)
		if ok {
			ranked = append(ranked, s)
		}
	}
	slices.SortStableFunc(ranked, func(a, b Suggestion) int {
		return cmp.Compare(b.Score, a.Score)
	})

	out := make([]Suggestion, 0, max(0, opts.QuickSlots)+max(0, opts.SlowSlots))
	out = appendN(out, ranked, opts.QuickSlots, true)
	return appendN(out, ranked, opts.SlowSlots, false)
}

// evaluate scores v against the planted neighbors; ok is false if any
// neighbor is antagonistic.
func evaluate(src Source, v catalog.Vegetable, neighbors []grid.Cell, month int, opts Options) (Suggestion, bool) {
	var friend string
	for _, n := range neighbors {
		switch companion.Check(src, v.ID, n.VegetableID) {
		case companion.Bad:
			return Suggestion{}, false
		case companion.Good:
			if friend == "" {
				friend = n.VegetableID
				if nv, ok := src.Get(n.VegetableID); ok && nv.Name != "" {
					friend = nv.Name
				}
			}
		}
	}

	s := Suggestion{
		VegetableID: v.ID,
		Score:       baseScore,
		QuickGrow:   v.DaysToHarvest.Max <= opts.QuickGrowDays,
		CanPlantNow: v.Planting.OutdoorSow.Contains(month) || v.Planting.Transplant.Contains(month),
	}
	if s.QuickGrow {
		s.Score += quickBonus
	}
	if s.CanPlantNow {
		s.Score += plantNowBonus
	}
	if friend != "" {
		s.Score += companionBonus
	}
	if v.Care.Difficulty == catalog.Beginner {
		s.Score += beginnerBonus
	}

	switch {
	case s.QuickGrow:
		s.Reason = fmt.Sprintf(quickReason, v.DaysToHarvest.Min, v.DaysToHarvest.Max)
	case friend != "":
		s.Reason = fmt.Sprintf(companionReason, friend)
	case s.CanPlantNow:
		s.Reason = plantNowReason
	default:
		s.Reason = fallbackReason
	}
	return s, true
}

func appendN(dst, ranked []Suggestion, n int, quick bool) []Suggestion {
	for _, s := range ranked {
		if n <= 0 {
			break
		}
		if s.QuickGrow == quick {
			dst = append(dst, s)
			n--
		}
	}
	return dst
}
