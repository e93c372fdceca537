package config

import (
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/lunch-roulette/internal/common"
	"github.com/Veraticus/lunch-roulette/internal/selection"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()

	v := viper.New()
	SetDefaults(v)
	if yaml != "" {
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "embedded", s.Catalog.Source)
	assert.Equal(t, 15*time.Second, s.Catalog.Timeout)
	assert.Equal(t, 3, s.Catalog.Attempts)
	assert.Equal(t, 24, s.Catalog.DemoCount)
	assert.Equal(t, selection.DefaultTiming(), s.Selection.Timing())
	assert.Zero(t, s.Selection.Seed)
	assert.Equal(t, "default", s.TUI.Theme)
	assert.Equal(t, "info", s.Logging.Level)
	assert.Equal(t, "console", s.Logging.Format)
}

func TestLoad_FromYAML(t *testing.T) {
	s, err := Load(newViper(t, `
catalog:
  source: https://example.com/restaurants.json
  timeout: 5s
  attempts: 5
selection:
  total: 2s
  tail: 500ms
  fast_interval: 50ms
  slow_interval: 100ms
  seed: 99
tui:
  theme: catppuccin-mocha
logging:
  level: debug
  format: json
  file: ~/lunch.log
`))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/restaurants.json", s.Catalog.Source)
	assert.Equal(t, 5*time.Second, s.Catalog.Timeout)
	assert.Equal(t, 5, s.Catalog.Attempts)
	assert.Equal(t, selection.Timing{
		Total:        2 * time.Second,
		Tail:         500 * time.Millisecond,
		FastInterval: 50 * time.Millisecond,
		SlowInterval: 100 * time.Millisecond,
	}, s.Selection.Timing())
	assert.Equal(t, int64(99), s.Selection.Seed)
	assert.Equal(t, "catppuccin-mocha", s.TUI.Theme)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "~/lunch.log", s.Logging.File)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LUNCH_CATALOG_SOURCE", "demo")

	v := newViper(t, "")
	v.SetEnvPrefix("LUNCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "demo", s.Catalog.Source)
}

func TestValidate(t *testing.T) {
	valid := func() Settings {
		s, err := Load(newViper(t, ""))
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		mutate  func(*Settings)
		wantErr error
		name    string
	}{
		{name: "valid", mutate: func(*Settings) {}},
		{name: "missing source", mutate: func(s *Settings) { s.Catalog.Source = "" }, wantErr: common.ErrMissingConfig},
		{name: "zero attempts", mutate: func(s *Settings) { s.Catalog.Attempts = 0 }, wantErr: common.ErrInvalidConfig},
		{name: "zero timeout", mutate: func(s *Settings) { s.Catalog.Timeout = 0 }, wantErr: common.ErrInvalidConfig},
		{name: "negative demo count", mutate: func(s *Settings) { s.Catalog.DemoCount = -1 }, wantErr: common.ErrInvalidConfig},
		{name: "tail longer than total", mutate: func(s *Settings) { s.Selection.Tail = 10 * time.Second }, wantErr: common.ErrInvalidConfig},
		{name: "zero slow interval", mutate: func(s *Settings) { s.Selection.SlowInterval = 0 }, wantErr: common.ErrInvalidConfig},
		{name: "bad log level", mutate: func(s *Settings) { s.Logging.Level = "loud" }, wantErr: common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
