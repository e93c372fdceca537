// Package testutil provides fixtures for tests that need a restaurant catalog.
//
// Example:
//
//	restaurants := testutil.NewCatalogBuilder(t).
//		WithCategory("快餐", 2).
//		WithRestaurant("兰州拉面", "面食").
//		Build()
//
//	path := testutil.WriteCatalog(t, restaurants, catalog.FormatYAML)
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/lunch-roulette/internal/catalog"
	"github.com/Veraticus/lunch-roulette/internal/model"
)

// CatalogBuilder assembles restaurants with sequential ids.
type CatalogBuilder struct {
	t           *testing.T
	restaurants []model.Restaurant
}

// NewCatalogBuilder starts an empty catalog.
func NewCatalogBuilder(t *testing.T) *CatalogBuilder {
	t.Helper()
	return &CatalogBuilder{t: t}
}

// WithRestaurant adds a single restaurant.
func (b *CatalogBuilder) WithRestaurant(name, category string) *CatalogBuilder {
	id := len(b.restaurants) + 1
	b.restaurants = append(b.restaurants, model.Restaurant{
		ID:          id,
		Name:        name,
		Category:    category,
		Location:    fmt.Sprintf("%d 号档口", id),
		Price:       "¥20-30",
		Rating:      4.0,
		WaitTime:    "10分钟",
		Tags:        []string{category},
		Image:       catalog.Icon(category),
		Description: name + "的招牌菜。",
	})
	return b
}

// WithCategory adds n generated restaurants in category.
func (b *CatalogBuilder) WithCategory(category string, n int) *CatalogBuilder {
	for i := 0; i < n; i++ {
		b.WithRestaurant(fmt.Sprintf("%s%d", category, len(b.restaurants)+1), category)
	}
	return b
}

// Build returns a copy of the restaurants added so far.
func (b *CatalogBuilder) Build() []model.Restaurant {
	out := make([]model.Restaurant, len(b.restaurants))
	copy(out, b.restaurants)
	return out
}

// WriteCatalog encodes restaurants into a temporary catalog file and returns
// its path. The extension matches the format so FileSource can detect it.
func WriteCatalog(t *testing.T, restaurants []model.Restaurant, format catalog.Format) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "restaurants."+string(format))
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create catalog file: %v", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.Errorf("failed to close catalog file: %v", closeErr)
		}
	}()

	if err := catalog.Encode(f, restaurants, format); err != nil {
		t.Fatalf("failed to encode catalog: %v", err)
	}
	return path
}

// WriteRaw writes an arbitrary document, for malformed-input tests.
func WriteRaw(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
