// Package config loads runtime settings for the allotment command from an
// optional config file, ALLOTMENT_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// ScoreConfig holds the companion score scale.
type ScoreConfig struct {
	Base int `mapstructure:"base"`
	Good int `mapstructure:"good"`
	Bad  int `mapstructure:"bad"`
}

// GapFillConfig holds the gap-filler tunables.
type GapFillConfig struct {
	QuickGrowDays int `mapstructure:"quick_grow_days"`
	QuickSlots    int `mapstructure:"quick_slots"`
	SlowSlots     int `mapstructure:"slow_slots"`
}

// Config holds all runtime configuration. An empty CatalogPath selects the
// built-in catalog.
type Config struct {
	CatalogPath  string        `mapstructure:"catalog_path"`
	LogLevel     string        `mapstructure:"log_level"`
	HistoryYears int           `mapstructure:"history_years"`
	Score        ScoreConfig   `mapstructure:"score"`
	GapFill      GapFillConfig `mapstructure:"gap_fill"`
}

// Load reads configuration from v (the global viper when nil), applying
// built-in defaults for values not set by file, environment or flags.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	v.SetDefault("catalog_path", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("history_years", 3)
	v.SetDefault("score.base", 50)
	v.SetDefault("score.good", 15)
	v.SetDefault("score.bad", -15)
	v.SetDefault("gap_fill.quick_grow_days", 60)
	v.SetDefault("gap_fill.quick_slots", 3)
	v.SetDefault("gap_fill.slow_slots", 2)

	v.SetEnvPrefix("ALLOTMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting against its allowed range.
func (c Config) Validate() error {
	if c.HistoryYears < 1 {
		return fmt.Errorf("%w: history_years must be >= 1, got %d", ErrInvalid, c.HistoryYears)
	}
	if c.Score.Good <= 0 || c.Score.Bad >= 0 {
		return fmt.Errorf("%w: score.good must be > 0 and score.bad < 0", ErrInvalid)
	}
	if c.GapFill.QuickGrowDays < 0 || c.GapFill.QuickSlots < 0 || c.GapFill.SlowSlots < 0 {
		return fmt.Errorf("%w: gap_fill values must be non-negative", ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}
