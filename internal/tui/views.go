package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lunch-roulette/internal/model"
	"github.com/charmbracelet/lipgloss"
)

const (
	cardWidth  = 28
	cardHeight = 8
	cardGap    = 1
	// header, filter bar, button and help with their spacing
	chromeHeight = 12
)

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return m.renderLoading()
	}
	if m.engine.ShowResult() {
		return m.renderResult()
	}
	return m.renderMain()
}

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("🍽️ 今天吃什么？"),
		"",
		m.spinner.View()+" "+m.theme.Muted.Render("正在加载美食..."),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderMain() string {
	sections := []string{m.renderHeader()}

	if m.catalog.Err != nil {
		sections = append(sections, m.theme.StatusError.Render("⚠ 加载失败: "+m.catalog.Err.Error()))
	}

	sections = append(sections,
		m.renderFilterBar(),
		"",
		m.renderGrid(),
		"",
		m.renderTrigger(),
	)

	if m.config.ShowHelp {
		sections = append(sections, "", m.renderHelp())
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("🍽️ 今天吃什么？"),
		m.theme.Subtitle.Render("让命运决定你的午餐"),
	)
}

func (m Model) renderFilterBar() string {
	if len(m.catalog.Filters) == 0 {
		return ""
	}

	items := make([]string, 0, len(m.catalog.Filters))
	for i, f := range m.catalog.Filters {
		label := fmt.Sprintf("%s %s (%d)", f.Icon, f.Label, f.Count)
		if i == m.filterIndex {
			items = append(items, m.theme.FilterActive.Render(label))
		} else {
			items = append(items, m.theme.FilterInactive.Render(label))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, items...)
	if m.width > 0 && lipgloss.Width(bar) > m.width {
		// Too wide for one line; fall back to a wrapped block.
		return lipgloss.NewStyle().Width(m.width).Render(strings.Join(items, " "))
	}
	return bar
}

// renderGrid lays the pool out in rows of cards, scrolled so the focused
// card stays visible.
func (m Model) renderGrid() string {
	pool := m.Pool()
	if len(pool) == 0 {
		return m.theme.Muted.Render("没有餐厅")
	}

	cols := m.columns()
	rows := make([][]model.Restaurant, 0, (len(pool)+cols-1)/cols)
	for start := 0; start < len(pool); start += cols {
		end := min(start+cols, len(pool))
		rows = append(rows, pool[start:end])
	}

	first, last := m.visibleRows(pool, len(rows), cols)

	rendered := make([]string, 0, last-first+2)
	if first > 0 {
		rendered = append(rendered, m.theme.Muted.Render(fmt.Sprintf("↑ %d more", first*cols)))
	}
	for _, row := range rows[first:last] {
		cards := make([]string, 0, len(row)*2)
		for i, r := range row {
			if i > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, m.renderCard(r))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	if hidden := len(pool) - min(last*cols, len(pool)); hidden > 0 {
		rendered = append(rendered, m.theme.Muted.Render(fmt.Sprintf("↓ %d more", hidden)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (m Model) columns() int {
	return max(1, (m.width+cardGap)/(cardWidth+2+cardGap))
}

// visibleRows returns the half-open range of rows that fit on screen.
func (m Model) visibleRows(pool []model.Restaurant, total, cols int) (int, int) {
	fit := max(1, (m.height-chromeHeight)/cardHeight)
	if total <= fit {
		return 0, total
	}

	focus := 0
	if id, ok := m.focusedID(); ok {
		for i, r := range pool {
			if r.ID == id {
				focus = i / cols
				break
			}
		}
	}

	first := max(0, focus-fit+1)
	return first, min(total, first+fit)
}

// focusedID is the card the eye should follow: the running highlight, or
// the last pick once a cycle has finished.
func (m Model) focusedID() (int, bool) {
	if m.engine.Spinning() {
		if r, ok := m.engine.Active(); ok {
			return r.ID, true
		}
		return 0, false
	}
	if r, ok := m.engine.Selected(); ok {
		return r.ID, true
	}
	return 0, false
}

func (m Model) renderCard(r model.Restaurant) string {
	inner := cardWidth - 2

	lines := []string{
		r.Image + " " + m.theme.Muted.Render(r.Category),
		m.theme.Bold.Render(truncate(r.Name, inner)),
		m.theme.Star.Render(model.Stars(r.Rating)) + " " + fmt.Sprintf("%.1f", r.Rating),
		m.theme.Muted.Render(truncate(r.Description, inner)),
		m.theme.Price.Render(r.Price) + m.theme.Muted.Render(" · ⏱ "+r.WaitTime),
		m.renderTags(r.Tags, 2),
	}

	style := m.theme.Card
	if id, ok := m.focusedID(); ok && id == r.ID {
		if m.engine.Spinning() {
			style = m.theme.ActiveCard
		} else {
			style = m.theme.SelectedCard
		}
	}

	return style.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) renderTags(tags []string, limit int) string {
	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	rendered := make([]string, 0, len(tags))
	for _, t := range tags {
		rendered = append(rendered, m.theme.Tag.Render(t))
	}
	return strings.Join(rendered, " ")
}

func (m Model) renderTrigger() string {
	switch {
	case m.engine.Spinning():
		return m.theme.ButtonDisabled.Render("🎲 选择中...")
	case !m.CanSpin():
		return m.theme.ButtonDisabled.Render("🎲 帮我选一个")
	default:
		return m.theme.Button.Render("🎲 帮我选一个")
	}
}

func (m Model) renderHelp() string {
	m.help.ShowAll = m.showHelp
	return m.help.View(m.keymap)
}

// renderResult shows the chosen restaurant over the screen.
func (m Model) renderResult() string {
	selected, ok := m.engine.Selected()
	if !ok {
		return m.renderMain()
	}
	// Prefer the catalog entry; the engine only holds the copy taken at Start.
	r, ok := m.catalog.Find(selected.ID)
	if !ok {
		r = selected
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("🎉 就是它了！"),
		"",
		r.Image,
		m.theme.Bold.Render(r.Name),
		m.theme.Muted.Render(r.Category),
		"",
		"📍 "+r.Location,
		"💰 "+m.theme.Price.Render(r.Price),
		"⭐ "+m.theme.Star.Render(model.Stars(r.Rating))+fmt.Sprintf(" %.1f", r.Rating),
		"⏱ "+r.WaitTime,
		"",
		lipgloss.NewStyle().Width(40).Align(lipgloss.Center).Render(r.Description),
		"",
		m.renderTags(r.Tags, 0),
		"",
		m.theme.Button.Render("太棒了，去吃！"),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.theme.Modal.Render(body))
}

// truncate shortens s to fit width display cells, counting wide runes as two.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > width-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + "…"
}
