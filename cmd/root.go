// Package cmd implements the allotment command line, a thin host over the
// planner engine for trying out catalogs, beds and rotations from a shell.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/allotment/catalog"
	"github.com/katalvlaran/allotment/config"
	"github.com/katalvlaran/allotment/gapfill"
	"github.com/katalvlaran/allotment/placement"
	"github.com/katalvlaran/allotment/planner"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "allotment",
		Short:         "Plan allotment beds: companions, rotation and gap fillers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default ./allotment.yaml)")
	root.PersistentFlags().String("catalog", "", "vegetable catalog file (.yaml or .toml); built-in when empty")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = v.BindPFlag("catalog_path", root.PersistentFlags().Lookup("catalog"))
	_ = v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	env := &env{v: v}
	root.AddCommand(
		newListCmd(env),
		newSearchCmd(env),
		newShowCmd(env),
		newCompatCmd(env),
		newCompanionsCmd(env),
		newRotationCmd(env),
		newValidateCmd(env),
		newGapFillCmd(env),
		newReportCmd(env),
	)
	return root
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		return nil
	}
	v.SetConfigName("allotment")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	// It's fine if no config file is found; we use defaults.
	_ = v.ReadInConfig()
	return nil
}

// env lazily builds the engine once flags and config are known.
type env struct {
	v      *viper.Viper
	engine *planner.Engine
}

func (e *env) Engine() (*planner.Engine, error) {
	if e.engine != nil {
		return e.engine, nil
	}
	cfg, err := config.Load(e.v)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	lvl, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		if cat, err = catalog.Open(cfg.CatalogPath); err != nil {
			return nil, err
		}
		log.Info("catalog loaded", slog.String("path", cfg.CatalogPath), slog.Int("vegetables", cat.Len()))
	}

	e.engine = planner.New(cat,
		planner.WithLogger(log),
		planner.WithHistoryYears(cfg.HistoryYears),
		planner.WithScoreOptions(placement.ScoreOptions{
			Base: cfg.Score.Base,
			Good: cfg.Score.Good,
			Bad:  cfg.Score.Bad,
		}),
		planner.WithGapFillOptions(gapfill.Options{
			QuickGrowDays: cfg.GapFill.QuickGrowDays,
			QuickSlots:    cfg.GapFill.QuickSlots,
			SlowSlots:     cfg.GapFill.SlowSlots,
		}),
	)
	return e.engine, nil
}
