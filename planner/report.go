package planner

import (
	"fmt"
	"log/slog"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/allotment/advice"
	"github.com/katalvlaran/allotment/companion"
	"github.com/katalvlaran/allotment/grid"
	"github.com/katalvlaran/allotment/placement"
	"github.com/katalvlaran/allotment/rotation"
)

// CellReport describes one planted cell in its current surroundings.
type CellReport struct {
	Row           int               `json:"row"`
	Col           int               `json:"col"`
	VegetableID   string            `json:"vegetableId"`
	Known         bool              `json:"known"`
	Score         int               `json:"score"`
	Compatibility companion.Verdict `json:"compatibility"`
	Conflicts     []string          `json:"conflicts,omitempty"`
}

// Report is a bed-level summary. Score statistics are zero when nothing is
// planted; DominantGroup is empty when no non-permanent crop is planted.
type Report struct {
	PlotID        string         `json:"plotId"`
	Planted       int            `json:"planted"`
	Empty         int            `json:"empty"`
	Cells         []CellReport   `json:"cells"`
	MeanScore     float64        `json:"meanScore"`
	MedianScore   float64        `json:"medianScore"`
	MinScore      float64        `json:"minScore"`
	ConflictPairs int            `json:"conflictPairs"`
	DominantGroup rotation.Group `json:"dominantGroup,omitempty"`
}

// PlotReport scores every planted cell of plot against its neighbors.
// Complexity: O(n²) in the worst case for n cells, O(n) neighbor lookups each.
func (e *Engine) PlotReport(plot *grid.Plot) (Report, error) {
	if plot == nil {
		return Report{}, nil
	}
	r := Report{PlotID: plot.ID, Cells: []CellReport{}}
	scores := make(stats.Float64Data, 0, len(plot.Cells))
	conflicts := 0

	for _, c := range plot.Cells {
		if !c.Planted() {
			r.Empty++
			continue
		}
		res := placement.Validate(e.cat, c.VegetableID, c, plot)
		cr := CellReport{
			Row:           c.Row,
			Col:           c.Col,
			VegetableID:   c.VegetableID,
			Known:         res.Valid,
			Score:         placement.CompanionScoreWith(e.cat, c.VegetableID, c, plot, e.score),
			Compatibility: res.Compatibility,
		}
		for _, w := range res.Warnings {
			if w.Kind == advice.KindAvoid {
				cr.Conflicts = append(cr.Conflicts, w.RelatedID)
			}
		}
		conflicts += len(cr.Conflicts)
		r.Cells = append(r.Cells, cr)
		scores = append(scores, float64(cr.Score))
	}
	r.Planted = len(r.Cells)
	// Compatibility is symmetric, so each antagonistic pair is seen from both cells.
	r.ConflictPairs = conflicts / 2
	if g, ok := rotation.DominantGroup(e.cat, plot); ok {
		r.DominantGroup = g
	}

	if len(scores) > 0 {
		var err error
		if r.MeanScore, err = stats.Mean(scores); err != nil {
			return r, fmt.Errorf("planner: mean score of %q: %w", plot.ID, err)
		}
		if r.MedianScore, err = stats.Median(scores); err != nil {
			return r, fmt.Errorf("planner: median score of %q: %w", plot.ID, err)
		}
		if r.MinScore, err = stats.Min(scores); err != nil {
			return r, fmt.Errorf("planner: min score of %q: %w", plot.ID, err)
		}
	}

	e.log.Debug("plot report",
		slog.String("plot", plot.ID),
		slog.Int("planted", r.Planted),
		slog.Int("conflictPairs", r.ConflictPairs),
		slog.Float64("meanScore", r.MeanScore))
	return r, nil
}
