package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/Veraticus/lunch-roulette/internal/model"
	"github.com/Veraticus/lunch-roulette/internal/selection"
	"github.com/stretchr/testify/assert"
)

func sampleRestaurant() model.Restaurant {
	return model.Restaurant{
		ID:          7,
		Name:        "深井烧腊",
		Category:    "烧腊",
		Location:    "老街 27 号",
		Price:       "¥25-40",
		Rating:      4.8,
		WaitTime:    "12分钟",
		Tags:        []string{"分量足", "招牌烧鹅"},
		Image:       "🦆",
		Description: "烧鹅皮脆肉嫩",
	}
}

func TestRenderResult(t *testing.T) {
	out := RenderResult(sampleRestaurant())

	for _, want := range []string{"就是它了", "深井烧腊", "烧腊", "老街 27 号", "¥25-40", "4.8", "★★★★½", "12分钟", "烧鹅皮脆肉嫩", "分量足", "招牌烧鹅"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderRating(t *testing.T) {
	assert.Contains(t, RenderRating(3), "★★★")
	assert.Contains(t, RenderRating(3), "3")
	assert.NotContains(t, RenderRating(-1), "★")
}

func TestRenderFilters(t *testing.T) {
	out := RenderFilters([]model.Filter{
		{Key: model.FilterAll, Label: "全部", Icon: "🍽️", Count: 3},
		{Key: "快餐", Label: "快餐", Icon: "🍔", Count: 2},
	})
	assert.Contains(t, out, "全部")
	assert.Contains(t, out, "(3)")
	assert.Contains(t, out, "🍔 快餐")
	assert.Contains(t, out, "(2)")

	assert.Contains(t, RenderFilters(nil), "No filters")
}

func TestRenderList(t *testing.T) {
	out := RenderList([]model.Restaurant{sampleRestaurant()})
	assert.Contains(t, out, "深井烧腊")
	assert.Contains(t, out, "¥25-40")
	assert.Contains(t, RenderList(nil), "No restaurants")
}

func TestSpinReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewSpinReporter(&buf, time.Second)

	r.Highlight(sampleRestaurant(), selection.PhaseFast, 100*time.Millisecond)
	r.Highlight(sampleRestaurant(), selection.PhaseSlow, 900*time.Millisecond)
	r.Resolved(sampleRestaurant())

	assert.Equal(t, 2, r.Highlights())
	assert.Contains(t, buf.String(), "深井烧腊")
}

func TestSpinReporter_OvershootDoesNotFinishEarly(t *testing.T) {
	var buf bytes.Buffer
	r := NewSpinReporter(&buf, 100*time.Millisecond)

	// A fast phase that overran its budget reports more than the total.
	r.Highlight(sampleRestaurant(), selection.PhaseFast, 150*time.Millisecond)
	r.Highlight(sampleRestaurant(), selection.PhaseSlow, 200*time.Millisecond)
	assert.False(t, r.progressBar.IsFinished())

	r.Resolved(sampleRestaurant())
	assert.True(t, r.progressBar.IsFinished())
}
