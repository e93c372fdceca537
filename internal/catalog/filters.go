package catalog

import (
	"sort"

	"github.com/Veraticus/lunch-roulette/internal/model"
)

const (
	// AllLabel is the display label of the catch-all filter.
	AllLabel = "全部"
	// FallbackIcon is used for categories without a dedicated glyph.
	FallbackIcon = "🍽️"
)

var categoryIcons = []struct {
	category string
	icon     string
}{
	{"快餐", "🍔"},
	{"面食", "🍜"},
	{"米饭", "🍚"},
	{"火锅", "🍲"},
	{"轻食", "🥗"},
	{"日料", "🍣"},
	{"烧腊", "🦆"},
	{"炒菜", "🥘"},
	{"家常菜", "🍛"},
	{"小吃", "🥟"},
	{"冒菜", "🌶️"},
	{"私房菜", "👨‍🍳"},
}

var iconByCategory = func() map[string]string {
	m := make(map[string]string, len(categoryIcons))
	for _, ci := range categoryIcons {
		m[ci.category] = ci.icon
	}
	return m
}()

// Icon returns the glyph for a category.
func Icon(category string) string {
	if icon, ok := iconByCategory[category]; ok {
		return icon
	}
	return FallbackIcon
}

// KnownCategories lists the categories that have a dedicated glyph, in table order.
func KnownCategories() []string {
	out := make([]string, 0, len(categoryIcons))
	for _, ci := range categoryIcons {
		out = append(out, ci.category)
	}
	return out
}

// DeriveFilters builds the filter list for a set of restaurants: the "all"
// filter first, then one filter per category ordered by descending count.
// Categories with equal counts keep the order they were first seen in.
func DeriveFilters(restaurants []model.Restaurant) []model.Filter {
	counts := make(map[string]int)
	var order []string
	for _, r := range restaurants {
		if _, seen := counts[r.Category]; !seen {
			order = append(order, r.Category)
		}
		counts[r.Category]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	filters := make([]model.Filter, 0, len(order)+1)
	filters = append(filters, model.Filter{
		Key:   model.FilterAll,
		Label: AllLabel,
		Icon:  FallbackIcon,
		Count: len(restaurants),
	})
	for _, category := range order {
		filters = append(filters, model.Filter{
			Key:   category,
			Label: category,
			Icon:  Icon(category),
			Count: counts[category],
		})
	}

	return filters
}

// Pool returns the restaurants matching the filter key, in catalog order.
// An empty key is a real category, not a synonym for FilterAll.
func Pool(restaurants []model.Restaurant, key string) []model.Restaurant {
	if key == model.FilterAll {
		return restaurants
	}
	filter := model.Filter{Key: key}
	var pool []model.Restaurant
	for _, r := range restaurants {
		if filter.Matches(r) {
			pool = append(pool, r)
		}
	}
	return pool
}
