package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/allotment/grid"
)

// bedFlags describe an in-memory bed built from the command line.
type bedFlags struct {
	id     string
	rows   int
	cols   int
	plants []string
}

func (b *bedFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&b.id, "plot", "bed", "plot id")
	c.Flags().IntVar(&b.rows, "rows", 3, "bed rows")
	c.Flags().IntVar(&b.cols, "cols", 3, "bed columns")
	c.Flags().StringArrayVar(&b.plants, "plant", nil, "planted cell as ROW,COL=VEGETABLE, repeatable")
}

func (b *bedFlags) plot() (*grid.Plot, error) {
	p, err := grid.NewPlot(b.id, b.rows, b.cols)
	if err != nil {
		return nil, err
	}
	for _, spec := range b.plants {
		at, veg, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("--plant %q: want ROW,COL=VEGETABLE", spec)
		}
		row, col, err := parseCell(at)
		if err != nil {
			return nil, fmt.Errorf("--plant %q: %w", spec, err)
		}
		if err := p.Plant(row, col, strings.TrimSpace(veg)); err != nil {
			return nil, fmt.Errorf("--plant %q: %w", spec, err)
		}
	}
	return p, nil
}

func parseCell(s string) (row, col int, err error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("cell %q: want ROW,COL", s)
	}
	if row, err = strconv.Atoi(strings.TrimSpace(r)); err != nil {
		return 0, 0, err
	}
	if col, err = strconv.Atoi(strings.TrimSpace(c)); err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func targetCell(p *grid.Plot, at string) (grid.Cell, error) {
	row, col, err := parseCell(at)
	if err != nil {
		return grid.Cell{}, err
	}
	cell, ok := p.Cell(row, col)
	if !ok {
		return grid.Cell{}, fmt.Errorf("--at %s: %w", at, grid.ErrOutOfBounds)
	}
	return cell, nil
}

func newValidateCmd(env *env) *cobra.Command {
	var (
		bed bedFlags
		at  string
	)
	c := &cobra.Command{
		Use:   "validate <vegetable>",
		Short: "Validate planting a vegetable into a bed cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Engine()
			if err != nil {
				return err
			}
			p, err := bed.plot()
			if err != nil {
				return err
			}
			cell, err := targetCell(p, at)
			if err != nil {
				return err
			}
			res := e.ValidatePlacement(args[0], cell, p)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "valid: %t  compatibility: %s  score: %d\n",
				res.Valid, res.Compatibility, e.CompanionScore(args[0], cell, p))
			for _, warn := range res.Warnings {
				fmt.Fprintf(w, "%s: %s\n", warn.Severity, warn.Message)
			}
			for _, s := range res.Suggestions {
				fmt.Fprintf(w, "tip: %s\n", s)
			}
			return nil
		},
	}
	bed.register(c)
	c.Flags().StringVar(&at, "at", "1,1", "target cell as ROW,COL")
	return c
}

func newGapFillCmd(env *env) *cobra.Command {
	var (
		bed   bedFlags
		at    string
		month int
	)
	c := &cobra.Command{
		Use:   "gapfill",
		Short: "Recommend quick, compatible crops for an empty cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Engine()
			if err != nil {
				return err
			}
			p, err := bed.plot()
			if err != nil {
				return err
			}
			cell, err := targetCell(p, at)
			if err != nil {
				return err
			}
			for _, s := range e.GapFillers(cell, p, month) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %3d  %s\n", s.VegetableID, s.Score, s.Reason)
			}
			return nil
		},
	}
	bed.register(c)
	c.Flags().StringVar(&at, "at", "1,1", "empty cell as ROW,COL")
	c.Flags().IntVar(&month, "month", int(time.Now().Month()), "month number 1-12")
	return c
}

func newReportCmd(env *env) *cobra.Command {
	var bed bedFlags
	c := &cobra.Command{
		Use:   "report",
		Short: "Score every planted cell of a bed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Engine()
			if err != nil {
				return err
			}
			p, err := bed.plot()
			if err != nil {
				return err
			}
			r, err := e.PlotReport(p)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, cell := range r.Cells {
				fmt.Fprintf(w, "(%d,%d) %-18s %3d  %s", cell.Row, cell.Col, cell.VegetableID, cell.Score, cell.Compatibility)
				if len(cell.Conflicts) > 0 {
					fmt.Fprintf(w, "  avoid: %s", strings.Join(cell.Conflicts, ", "))
				}
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "planted %d, empty %d, conflicts %d, mean %.1f, median %.1f, min %.0f\n",
				r.Planted, r.Empty, r.ConflictPairs, r.MeanScore, r.MedianScore, r.MinScore)
			if r.DominantGroup != "" {
				fmt.Fprintf(w, "dominant rotation group: %s\n", r.DominantGroup)
			}
			return nil
		},
	}
	bed.register(c)
	return c
}
