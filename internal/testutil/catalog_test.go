package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/lunch-roulette/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogBuilder(t *testing.T) {
	restaurants := NewCatalogBuilder(t).
		WithCategory("快餐", 2).
		WithRestaurant("兰州拉面", "面食").
		Build()

	require.Len(t, restaurants, 3)
	for i, r := range restaurants {
		assert.Equal(t, i+1, r.ID)
	}
	assert.Equal(t, "兰州拉面", restaurants[2].Name)
	assert.Equal(t, "快餐", restaurants[0].Category)
}

func TestWriteCatalog(t *testing.T) {
	restaurants := NewCatalogBuilder(t).WithCategory("面食", 3).Build()

	for _, format := range []catalog.Format{catalog.FormatJSON, catalog.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			path := WriteCatalog(t, restaurants, format)
			got, err := catalog.FileSource{Path: path}.Fetch(context.Background())
			require.NoError(t, err)
			assert.Equal(t, restaurants, got)
		})
	}
}
