package rotation

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/allotment/advice"
	"github.com/katalvlaran/allotment/catalog"
	"github.com/katalvlaran/allotment/grid"
)

// GroupForCategory maps a vegetable category onto its rotation group.
func GroupForCategory(c catalog.Category) (Group, bool) {
	g, ok := categoryGroups[c]
	return g, ok
}

// GroupOf returns the rotation group of vegID; ok is false for unknown ids.
func GroupOf(cat catalog.Lookup, vegID string) (Group, bool) {
	if cat == nil {
		return "", false
	}
	v, ok := cat.Get(vegID)
	if !ok {
		return "", false
	}
	return GroupForCategory(v.Category)
}

// Suggest returns the group to grow in plotID during year, following the
// most recent earlier entry for that plot.
// Complexity: O(h) for h history entries.
func Suggest(plotID string, year int, history []Entry) Group {
	last, ok := latestBefore(plotID, year, history)
	if !ok {
		return cycle[0]
	}
	for i, g := range cycle {
		if g == last.Group {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// CheckViolation reports whether growing vegID in plotID during year repeats
// a family grown there in the previous two years. It returns nil for
// permanent or unknown vegetables and when no conflict exists.
func CheckViolation(cat catalog.Lookup, vegID, plotID string, year int, history []Entry) *advice.Warning {
	group, ok := GroupOf(cat, vegID)
	if !ok || group == Permanent {
		return nil
	}

	var hit *Entry
	for i := range history {
		e := &history[i]
		if e.PlotID != plotID || e.Group != group || e.Year < year-2 || e.Year >= year {
			continue
		}
		if hit == nil || e.Year > hit.Year {
			hit = e
		}
	}
	if hit == nil {
		return nil
	}

	w := &advice.Warning{
		Kind:        advice.KindRotation,
		Severity:    advice.SeverityWarning,
		VegetableID: vegID,
		Year:        hit.Year,
	}
	if hit.Year == year-1 {
		w.Severity = advice.SeverityError
	}
	v, _ := cat.Get(vegID)
	w.Message = fmt.Sprintf("%s is in the %s family, grown in this bed in %d; try %s for %d",
		nameOr(v, vegID), group, hit.Year, Suggest(plotID, year, history), year)
	return w
}

// Score rates growing vegID in plotID during year on a 0–100 scale.
func Score(cat catalog.Lookup, vegID, plotID string, year int, history []Entry) int {
	group, ok := GroupOf(cat, vegID)
	if ok && group == Permanent {
		return 75
	}
	if ok && group == Suggest(plotID, year, history) {
		return 100
	}
	if w := CheckViolation(cat, vegID, plotID, year, history); w != nil {
		if w.IsError() {
			return 10
		}
		return 30
	}
	return 60
}

// DominantGroup returns the most common non-permanent group among the
// planted cells of plot. ok is false when there is none. Unknown
// vegetables are ignored.
// Complexity: O(n) for n cells.
func DominantGroup(cat catalog.Lookup, plot *grid.Plot) (Group, bool) {
	if plot == nil {
		return "", false
	}
	counts := make(map[Group]int, len(categoryGroups))
	for _, c := range plot.Cells {
		if !c.Planted() {
			continue
		}
		if g, ok := GroupOf(cat, c.VegetableID); ok && g != Permanent {
			counts[g]++
		}
	}

	var best Group
	bestCount := 0
	for _, g := range Groups() {
		if counts[g] > bestCount {
			best, bestCount = g, counts[g]
		}
	}
	return best, bestCount > 0
}

// BuildEntry snapshots plot for year. It returns false when the plot has no
// dominant group. Vegetables lists each planted id once, in cell order.
func BuildEntry(cat catalog.Lookup, plot *grid.Plot, year int) (Entry, bool) {
	g, ok := DominantGroup(cat, plot)
	if !ok {
		return Entry{}, false
	}
	e := Entry{PlotID: plot.ID, Year: year, Group: g}
	for _, c := range plot.Cells {
		if c.Planted() && !slices.Contains(e.Vegetables, c.VegetableID) {
			e.Vegetables = append(e.Vegetables, c.VegetableID)
		}
	}
	return e, true
}

// Upsert returns a copy of history with e stored under (e.PlotID, e.Year),
// replacing any prior entry for that key.
func Upsert(history []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(history)+1)
	for _, h := range history {
		if h.PlotID != e.PlotID || h.Year != e.Year {
			out = append(out, h)
		}
	}
	e.Vegetables = slices.Clone(e.Vegetables)
	return append(out, e)
}

// Summary returns one row per year from year-years to year-1, oldest first,
// describing what plotID grew.
func Summary(plotID string, year, years int, history []Entry) []YearSummary {
	if years <= 0 {
		return nil
	}
	out := make([]YearSummary, 0, years)
	for y := year - years; y < year; y++ {
		row := YearSummary{Year: y}
		for _, e := range history {
			if e.PlotID == plotID && e.Year == y {
				row.Group = e.Group
				row.Vegetables = slices.Clone(e.Vegetables)
				row.Recorded = true
				break
			}
		}
		out = append(out, row)
	}
	return out
}

func latestBefore(plotID string, year int, history []Entry) (Entry, bool) {
	var (
		last  Entry
		found bool
	)
	for _, e := range history {
		if e.PlotID != plotID || e.Year >= year {
			continue
		}
		if !found || e.Year > last.Year {
			last, found = e, true
		}
	}
	return last, found
}

func nameOr(v catalog.Vegetable, id string) string {
	if v.Name != "" {
		return v.Name
	}
	return id
}
