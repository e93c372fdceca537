// Package catalog loads the restaurant list and derives its category filters.
//
// Loading never fails outright: an unreachable or malformed source yields an
// empty Catalog whose Err explains why, so the client can still show a
// "no restaurants" state.
package catalog

import (
	"context"

	"github.com/Veraticus/lunch-roulette/internal/common"
	"github.com/Veraticus/lunch-roulette/internal/model"
)

// Catalog is the loaded restaurant list plus its derived filters.
type Catalog struct {
	Err         error
	Source      string
	Restaurants []model.Restaurant
	Filters     []model.Filter
}

// New builds a catalog from an in-memory restaurant list.
func New(source string, restaurants []model.Restaurant) Catalog {
	return Catalog{
		Source:      source,
		Restaurants: restaurants,
		Filters:     DeriveFilters(restaurants),
	}
}

// Load fetches restaurants from src and derives filters. On failure the
// returned catalog is empty (no restaurants, no filters) and Err is set.
func Load(ctx context.Context, src Source) Catalog {
	restaurants, err := src.Fetch(ctx)
	if err != nil {
		common.LogError(err, "Failed to load catalog", common.Fields{"source": src.Name()})
		return Catalog{
			Source:      src.Name(),
			Err:         err,
			Restaurants: []model.Restaurant{},
			Filters:     []model.Filter{},
		}
	}

	common.LogDebug("Catalog loaded", common.Fields{
		"source":      src.Name(),
		"restaurants": len(restaurants),
	})

	return New(src.Name(), restaurants)
}

// Empty reports whether there is nothing to choose from.
func (c Catalog) Empty() bool {
	return len(c.Restaurants) == 0
}

// Pool returns the restaurants eligible under the filter key.
func (c Catalog) Pool(key string) []model.Restaurant {
	return Pool(c.Restaurants, key)
}

// Find looks up a restaurant by id.
func (c Catalog) Find(id int) (model.Restaurant, bool) {
	for _, r := range c.Restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return model.Restaurant{}, false
}

// Filter returns the filter with the given key.
func (c Catalog) Filter(key string) (model.Filter, bool) {
	for _, f := range c.Filters {
		if f.Key == key {
			return f, true
		}
	}
	return model.Filter{}, false
}
