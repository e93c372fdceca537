// Package tui implements the interactive restaurant roulette.
package tui

import (
	"log/slog"
	"strconv"

	"github.com/Veraticus/lunch-roulette/internal/catalog"
	"github.com/Veraticus/lunch-roulette/internal/model"
	"github.com/Veraticus/lunch-roulette/internal/selection"
	"github.com/Veraticus/lunch-roulette/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the main TUI state.
type Model struct {
	theme       themes.Theme
	engine      *selection.Engine
	catalog     catalog.Catalog
	spinner     spinner.Model
	help        help.Model
	keymap      KeyMap
	config      Config
	filterIndex int
	width       int
	height      int
	loading     bool
	showHelp    bool
	quitting    bool
}

// New creates the model. It fails only when the selection timing is invalid.
func New(opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	engineOpts := []selection.Option{
		selection.WithTiming(cfg.Timing),
		selection.WithSeed(cfg.Seed),
	}
	if cfg.Rand != nil {
		engineOpts = append(engineOpts, selection.WithRand(cfg.Rand))
	}
	engine, err := selection.New(engineOpts...)
	if err != nil {
		return Model{}, err
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = cfg.Theme.Title

	return Model{
		theme:   cfg.Theme,
		engine:  engine,
		spinner: spin,
		help:    help.New(),
		keymap:  DefaultKeyMap(),
		config:  cfg,
		width:   cfg.Width,
		height:  cfg.Height,
		loading: true,
	}, nil
}

// Init starts the catalog load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadCatalog(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case catalogLoadedMsg:
		m.catalog = msg.catalog
		m.loading = false
		m.filterIndex = 0
		return m, nil

	case selectionTickMsg:
		if !m.engine.Accepts(msg.tick) {
			return m, nil
		}
		next, more := m.engine.Advance(msg.tick)
		if more {
			return m, scheduleTick(next)
		}
		if selected, ok := m.engine.Selected(); ok {
			slog.Info("Restaurant selected",
				"cycle", msg.tick.Cycle,
				"restaurant_id", selected.ID,
				"restaurant", selected.Name)
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes key presses. The result panel, when visible, captures
// everything except quitting.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.loading {
		return m, nil
	}

	if m.engine.ShowResult() {
		switch {
		case key.Matches(msg, m.keymap.Dismiss):
			m.engine.Dismiss()
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keymap.NextFilter):
		m.moveFilter(1)

	case key.Matches(msg, m.keymap.PrevFilter):
		m.moveFilter(-1)

	case key.Matches(msg, m.keymap.JumpFilter):
		if n, err := strconv.Atoi(msg.String()); err == nil && n-1 < len(m.catalog.Filters) {
			m.filterIndex = n - 1
		}

	case key.Matches(msg, m.keymap.Spin):
		return m, m.startSelection()
	}

	return m, nil
}

// startSelection triggers a cycle over the current pool. The engine ignores
// the request while spinning or when the pool is empty.
func (m Model) startSelection() tea.Cmd {
	tick, ok := m.engine.Start(m.Pool())
	if !ok {
		return nil
	}
	return scheduleTick(tick)
}

func (m *Model) moveFilter(delta int) {
	n := len(m.catalog.Filters)
	if n == 0 {
		return
	}
	m.filterIndex = ((m.filterIndex+delta)%n + n) % n
}

// ActiveFilter returns the filter currently narrowing the pool.
func (m Model) ActiveFilter() model.Filter {
	if m.filterIndex < len(m.catalog.Filters) {
		return m.catalog.Filters[m.filterIndex]
	}
	return model.Filter{Key: model.FilterAll, Label: catalog.AllLabel, Icon: catalog.FallbackIcon}
}

// Pool returns the restaurants eligible under the active filter.
func (m Model) Pool() []model.Restaurant {
	return m.catalog.Pool(m.ActiveFilter().Key)
}

// CanSpin reports whether the trigger is enabled.
func (m Model) CanSpin() bool {
	return !m.loading && !m.engine.Spinning() && len(m.Pool()) > 0
}

// Selection exposes the engine state for display and tests.
func (m Model) Selection() selection.Snapshot {
	return m.engine.Snapshot()
}
