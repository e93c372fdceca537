// Package themes holds the color palettes and lipgloss styles of the TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title          lipgloss.Style
	Subtitle       lipgloss.Style
	Normal         lipgloss.Style
	Bold           lipgloss.Style
	Muted          lipgloss.Style
	FilterActive   lipgloss.Style
	FilterInactive lipgloss.Style
	Card           lipgloss.Style
	ActiveCard     lipgloss.Style
	SelectedCard   lipgloss.Style
	Tag            lipgloss.Style
	Star           lipgloss.Style
	Price          lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Modal          lipgloss.Style
	StatusWarning  lipgloss.Style
	StatusError    lipgloss.Style
	StatusInfo     lipgloss.Style
	Primary        lipgloss.Color
	Secondary      lipgloss.Color
	Accent         lipgloss.Color
	MutedColor     lipgloss.Color
	Border         lipgloss.Color
	Foreground     lipgloss.Color
	Background     lipgloss.Color
	Error          lipgloss.Color
	Warning        lipgloss.Color
	Info           lipgloss.Color
}

type palette struct {
	primary    string
	secondary  string
	accent     string
	muted      string
	border     string
	foreground string
	background string
	tagBack    string
	errorColor string
	warning    string
	info       string
}

func build(p palette) Theme {
	primary := lipgloss.Color(p.primary)
	accent := lipgloss.Color(p.accent)
	border := lipgloss.Color(p.border)
	fg := lipgloss.Color(p.foreground)
	muted := lipgloss.Color(p.muted)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return Theme{
		Primary:    primary,
		Secondary:  lipgloss.Color(p.secondary),
		Accent:     accent,
		MutedColor: muted,
		Border:     border,
		Foreground: fg,
		Background: lipgloss.Color(p.background),
		Error:      lipgloss.Color(p.errorColor),
		Warning:    lipgloss.Color(p.warning),
		Info:       lipgloss.Color(p.info),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Muted: lipgloss.NewStyle().
			Foreground(muted),

		FilterActive: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color(p.background)).
			Bold(true).
			Padding(0, 1),
		FilterInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),

		Card: card,
		ActiveCard: card.
			BorderForeground(accent).
			Border(lipgloss.ThickBorder()),
		SelectedCard: card.
			BorderForeground(primary).
			Border(lipgloss.DoubleBorder()).
			Bold(true),

		Tag: lipgloss.NewStyle().
			Foreground(primary).
			Background(lipgloss.Color(p.tagBack)).
			Padding(0, 1),
		Star: lipgloss.NewStyle().
			Foreground(accent),
		Price: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.background)).
			Background(primary).
			Bold(true).
			Padding(0, 3),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(muted).
			Background(border).
			Padding(0, 3),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 3).
			Align(lipgloss.Center),

		StatusWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errorColor)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)),
	}
}

// Default is the default theme.
var Default = build(palette{
	primary:    "#ff6b35",
	secondary:  "#ff9a56",
	accent:     "#ffc107",
	muted:      "#888888",
	border:     "#404040",
	foreground: "#fafafa",
	background: "#1a1a1a",
	tagBack:    "#3a2418",
	errorColor: "#ff4e50",
	warning:    "#ffb800",
	info:       "#3b82f6",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = build(palette{
	primary:    "#fab387",
	secondary:  "#f5c2e7",
	accent:     "#f9e2af",
	muted:      "#6c7086",
	border:     "#45475a",
	foreground: "#cdd6f4",
	background: "#1e1e2e",
	tagBack:    "#313244",
	errorColor: "#f38ba8",
	warning:    "#f9e2af",
	info:       "#89dceb",
})

// Names lists the selectable theme names.
func Names() []string {
	return []string{"default", "catppuccin-mocha"}
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
