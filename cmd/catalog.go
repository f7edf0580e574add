package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/allotment/catalog"
)

func newListCmd(env *env) *cobra.Command {
	var (
		category string
		month    int
		activity string
	)
	c := &cobra.Command{
		Use:   "list",
		Short: "List catalog vegetables, optionally filtered by category or month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Engine()
			if err != nil {
				return err
			}
			cat := e.Catalog()
			vegs := cat.All()
			switch {
			case month != 0:
				vegs = cat.ByMonth(month, catalog.Activity(activity))
			case category != "":
				vegs = cat.ByCategory(catalog.Category(category))
			}
			if month != 0 && category != "" {
				vegs = onlyCategory(vegs, catalog.Category(category))
			}
			printVegetables(cmd.OutOrStdout(), vegs)
			return nil
		},
	}
	c.Flags().StringVar(&category, "category", "", "category, e.g. brassicas")
	c.Flags().IntVar(&month, "month", 0, "month number 1-12")
	c.Flags().StringVar(&activity, "activity", string(catalog.ActivitySow), "sow, indoor-sow, outdoor-sow, transplant or harvest")
	return c
}

func newSearchCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search vegetable names and descriptions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Engine()
			if err != nil {
				return err
			}
			printVegetables(cmd.OutOrStdout(), e.Catalog().Search(strings.Join(args, " ")))
			return nil
		},
	}
}

func newShowCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one vegetable in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Engine()
			if err != nil {
				return err
			}
			v, ok := e.Catalog().Get(args[0])
			if !ok {
				return fmt.Errorf("unknown vegetable %q", args[0])
			}
			g, _ := e.RotationGroup(v.ID)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%s)\n", v.Name, v.ID)
			fmt.Fprintf(w, "  %s\n", v.Description)
			fmt.Fprintf(w, "  category:     %s (rotation group %s)\n", v.Category, g)
			fmt.Fprintf(w, "  harvest in:   %d-%d days\n", v.DaysToHarvest.Min, v.DaysToHarvest.Max)
			fmt.Fprintf(w, "  care:         %s, %s water, %d cm apart, %s\n", v.Care.Sun, v.Care.Water, v.Care.SpacingCM, v.Care.Difficulty)
			fmt.Fprintf(w, "  sow indoors:  %v\n", []int(v.Planting.IndoorSow))
			fmt.Fprintf(w, "  sow outdoors: %v\n", []int(v.Planting.OutdoorSow))
			fmt.Fprintf(w, "  transplant:   %v\n", []int(v.Planting.Transplant))
			fmt.Fprintf(w, "  harvest:      %v\n", []int(v.Planting.Harvest))
			fmt.Fprintf(w, "  companions:   %s\n", strings.Join(v.Companions, ", "))
			fmt.Fprintf(w, "  avoid:        %s\n", strings.Join(v.Avoid, ", "))
			return nil
		},
	}
}

func onlyCategory(vegs []catalog.Vegetable, c catalog.Category) []catalog.Vegetable {
	var out []catalog.Vegetable
	for _, v := range vegs {
		if v.Category == c {
			out = append(out, v)
		}
	}
	return out
}

func printVegetables(w io.Writer, vegs []catalog.Vegetable) {
	for _, v := range vegs {
		fmt.Fprintf(w, "%-18s %-16s %3d-%-3d days  %s\n", v.ID, v.Category, v.DaysToHarvest.Min, v.DaysToHarvest.Max, v.Care.Difficulty)
	}
}
