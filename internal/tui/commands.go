package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/lunch-roulette/internal/catalog"
	"github.com/Veraticus/lunch-roulette/internal/common"
	"github.com/Veraticus/lunch-roulette/internal/model"
	"github.com/Veraticus/lunch-roulette/internal/selection"
	tea "github.com/charmbracelet/bubbletea"
)

// loadCatalog fetches the restaurant list. It always produces a
// catalogLoadedMsg; failures arrive as an empty catalog with Err set.
func (m Model) loadCatalog() tea.Cmd {
	src := m.config.Source
	timeout := m.config.LoadTimeout

	return func() tea.Msg {
		if src == nil {
			return catalogLoadedMsg{
				catalog: catalog.Catalog{
					Err:         fmt.Errorf("%w: catalog source", common.ErrMissingConfig),
					Restaurants: []model.Restaurant{},
					Filters:     []model.Filter{},
				},
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return catalogLoadedMsg{catalog: catalog.Load(ctx, src)}
	}
}

// scheduleTick arms the timer the engine asked for.
func scheduleTick(t selection.Tick) tea.Cmd {
	return tea.Tick(t.After, func(time.Time) tea.Msg {
		return selectionTickMsg{tick: t}
	})
}
