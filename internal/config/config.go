// Package config decodes and validates the application settings.
package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/lunch-roulette/internal/common"
	"github.com/Veraticus/lunch-roulette/internal/selection"
	"github.com/spf13/viper"
)

// Settings is the decoded application configuration.
type Settings struct {
	Logging   LoggingSettings   `mapstructure:"logging"`
	TUI       TUISettings       `mapstructure:"tui"`
	Catalog   CatalogSettings   `mapstructure:"catalog"`
	Selection SelectionSettings `mapstructure:"selection"`
}

// CatalogSettings controls where restaurants come from.
type CatalogSettings struct {
	// Source is a file path, an http(s) URL, "embedded" or "demo".
	Source    string        `mapstructure:"source"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Attempts  int           `mapstructure:"attempts"`
	DemoCount int           `mapstructure:"demo_count"`
	DemoSeed  int64         `mapstructure:"demo_seed"`
}

// SelectionSettings holds the animation timing and the random seed.
type SelectionSettings struct {
	Total        time.Duration `mapstructure:"total"`
	Tail         time.Duration `mapstructure:"tail"`
	FastInterval time.Duration `mapstructure:"fast_interval"`
	SlowInterval time.Duration `mapstructure:"slow_interval"`
	// Seed of 0 means seed from the clock.
	Seed int64 `mapstructure:"seed"`
}

// TUISettings configures the interactive client.
type TUISettings struct {
	Theme string `mapstructure:"theme"`
}

// LoggingSettings configures slog.
type LoggingSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	timing := selection.DefaultTiming()

	v.SetDefault("catalog.source", "embedded")
	v.SetDefault("catalog.timeout", 15*time.Second)
	v.SetDefault("catalog.attempts", 3)
	v.SetDefault("catalog.demo_count", 24)
	v.SetDefault("catalog.demo_seed", 0)

	v.SetDefault("selection.total", timing.Total)
	v.SetDefault("selection.tail", timing.Tail)
	v.SetDefault("selection.fast_interval", timing.FastInterval)
	v.SetDefault("selection.slow_interval", timing.SlowInterval)
	v.SetDefault("selection.seed", 0)

	v.SetDefault("tui.theme", "default")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings for values the application cannot run with.
func (s Settings) Validate() error {
	if s.Catalog.Source == "" {
		return fmt.Errorf("%w: catalog.source", common.ErrMissingConfig)
	}
	if s.Catalog.Attempts < 1 {
		return fmt.Errorf("%w: catalog.attempts must be at least 1", common.ErrInvalidConfig)
	}
	if s.Catalog.Timeout <= 0 {
		return fmt.Errorf("%w: catalog.timeout must be positive", common.ErrInvalidConfig)
	}
	if s.Catalog.DemoCount < 0 {
		return fmt.Errorf("%w: catalog.demo_count must not be negative", common.ErrInvalidConfig)
	}
	if err := s.Selection.Timing().Validate(); err != nil {
		return err
	}
	if _, err := common.ParseLevel(s.Logging.Level); err != nil {
		return err
	}
	return nil
}

// Timing converts the selection settings into engine timing.
func (s SelectionSettings) Timing() selection.Timing {
	return selection.Timing{
		Total:        s.Total,
		Tail:         s.Tail,
		FastInterval: s.FastInterval,
		SlowInterval: s.SlowInterval,
	}
}
