package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCompatCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "compat <a> <b>",
		Short: "Check whether two vegetables make good neighbors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Engine()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s + %s: %s\n", args[0], args[1], e.Compatibility(args[0], args[1]))
			return nil
		},
	}
}

func newCompanionsCmd(env *env) *cobra.Command {
	return &cobra.Command{
		Use:   "companions <id>",
		Short: "List the companions and antagonists of a vegetable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Engine()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "good: %s\n", strings.Join(e.SuggestedCompanions(args[0]), ", "))
			fmt.Fprintf(w, "avoid: %s\n", strings.Join(e.AvoidedPlants(args[0]), ", "))
			return nil
		},
	}
}
