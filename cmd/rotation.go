package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/allotment/rotation"
)

type historyFlags struct {
	plot  string
	year  int
	grown []string
}

func (h *historyFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&h.plot, "plot", "bed", "plot id")
	c.Flags().IntVar(&h.year, "year", time.Now().Year(), "season to plan")
	c.Flags().StringArrayVar(&h.grown, "grown", nil, "past season as YEAR=GROUP, repeatable")
}

func (h *historyFlags) history() ([]rotation.Entry, error) {
	var out []rotation.Entry
	for _, g := range h.grown {
		y, group, ok := strings.Cut(g, "=")
		if !ok {
			return nil, fmt.Errorf("--grown %q: want YEAR=GROUP", g)
		}
		year, err := strconv.Atoi(strings.TrimSpace(y))
		if err != nil {
			return nil, fmt.Errorf("--grown %q: %w", g, err)
		}
		out = rotation.Upsert(out, rotation.Entry{PlotID: h.plot, Year: year, Group: rotation.Group(strings.TrimSpace(group))})
	}
	return out, nil
}

func newRotationCmd(env *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "rotation",
		Short: "Crop rotation advice for a bed",
	}

	var next historyFlags
	nextCmd := &cobra.Command{
		Use:   "next",
		Short: "Suggest the rotation group for the coming season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Engine()
			if err != nil {
				return err
			}
			history, err := next.history()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, row := range e.HistorySummary(next.plot, next.year, history) {
				group := string(row.Group)
				if !row.Recorded {
					group = "-"
				}
				fmt.Fprintf(w, "%d  %s\n", row.Year, group)
			}
			fmt.Fprintf(w, "%d  suggest %s\n", next.year, e.SuggestRotation(next.plot, next.year, history))
			return nil
		},
	}
	next.register(nextCmd)

	var check historyFlags
	checkCmd := &cobra.Command{
		Use:   "check <vegetable>",
		Short: "Check a vegetable against the bed's rotation history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Engine()
			if err != nil {
				return err
			}
			history, err := check.history()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "score: %d\n", e.RotationScore(args[0], check.plot, check.year, history))
			if v := e.CheckRotation(args[0], check.plot, check.year, history); v != nil {
				fmt.Fprintf(w, "%s: %s\n", v.Severity, v.Message)
			}
			return nil
		},
	}
	check.register(checkCmd)

	c.AddCommand(nextCmd, checkCmd)
	return c
}
