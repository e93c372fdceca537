package tui

import (
	"time"

	"github.com/Veraticus/lunch-roulette/internal/catalog"
	"github.com/Veraticus/lunch-roulette/internal/selection"
	"github.com/Veraticus/lunch-roulette/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme       themes.Theme
	Source      catalog.Source
	Rand        selection.Rand
	Timing      selection.Timing
	LoadTimeout time.Duration
	Seed        int64
	Width       int
	Height      int
	ShowHelp    bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:       themes.Default,
		Source:      catalog.EmbeddedSource{},
		Timing:      selection.DefaultTiming(),
		LoadTimeout: 15 * time.Second,
		Width:       100,
		Height:      32,
		ShowHelp:    true,
	}
}

// WithSource sets where the restaurants are loaded from.
func WithSource(src catalog.Source) Option {
	return func(c *Config) {
		c.Source = src
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithTiming sets the selection animation timing.
func WithTiming(t selection.Timing) Option {
	return func(c *Config) {
		c.Timing = t
	}
}

// WithSeed seeds the selection random source. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithRand replaces the selection random source entirely.
func WithRand(r selection.Rand) Option {
	return func(c *Config) {
		c.Rand = r
	}
}

// WithLoadTimeout bounds how long the catalog load may take.
func WithLoadTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.LoadTimeout = d
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithHelp toggles the help bar.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
