package tui

import (
	"github.com/Veraticus/lunch-roulette/internal/catalog"
	"github.com/Veraticus/lunch-roulette/internal/selection"
)

// Data loading messages.
type catalogLoadedMsg struct {
	catalog catalog.Catalog
}

// Timer messages. Each carries the token the engine armed.
type selectionTickMsg struct {
	tick selection.Tick
}
