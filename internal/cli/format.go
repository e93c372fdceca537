package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lunch-roulette/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderRating renders stars followed by the numeric rating.
func RenderRating(rating float64) string {
	return strings.TrimSpace(StarStyle.Render(model.Stars(rating)) + " " + fmt.Sprintf("%g", rating))
}

// RenderTags renders tags as chips separated by spaces.
func RenderTags(tags []string) string {
	chips := make([]string, 0, len(tags))
	for _, tag := range tags {
		chips = append(chips, TagStyle.Render(tag))
	}
	return strings.Join(chips, " ")
}

// RenderResult renders the full detail box for a chosen restaurant.
func RenderResult(r model.Restaurant) string {
	lines := []string{
		fmt.Sprintf("%s  %s", r.Image, lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).Render(r.Name)),
		SubtleStyle.Render(r.Category),
		"",
		fmt.Sprintf("📍 位置  %s", r.Location),
		fmt.Sprintf("💰 价格  %s", r.Price),
		fmt.Sprintf("⭐ 评分  %s", RenderRating(r.Rating)),
		fmt.Sprintf("⏱️ 等待  %s", r.WaitTime),
	}
	if r.Description != "" {
		lines = append(lines, "", r.Description)
	}
	if len(r.Tags) > 0 {
		lines = append(lines, "", RenderTags(r.Tags))
	}

	return RenderBox(PartyIcon+" 就是它了！", strings.Join(lines, "\n"))
}

// RenderFilters renders one line per filter: icon, label and count.
func RenderFilters(filters []model.Filter) string {
	if len(filters) == 0 {
		return FormatWarning("No filters available")
	}
	var b strings.Builder
	for _, f := range filters {
		fmt.Fprintf(&b, "%s %s %s\n", f.Icon, f.Label, SubtleStyle.Render(fmt.Sprintf("(%d)", f.Count)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderList renders a compact one-line summary per restaurant.
func RenderList(restaurants []model.Restaurant) string {
	if len(restaurants) == 0 {
		return FormatWarning("No restaurants")
	}
	var b strings.Builder
	for _, r := range restaurants {
		fmt.Fprintf(&b, "%s %-3d %s  %s  %s  %s\n",
			r.Image,
			r.ID,
			r.Name,
			SubtleStyle.Render(r.Category),
			r.Price,
			RenderRating(r.Rating))
	}
	return strings.TrimRight(b.String(), "\n")
}
