package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Veraticus/lunch-roulette/internal/catalog"
	"github.com/Veraticus/lunch-roulette/internal/cli"
	"github.com/Veraticus/lunch-roulette/internal/common"
	"github.com/Veraticus/lunch-roulette/internal/config"
	"github.com/Veraticus/lunch-roulette/internal/model"
	"github.com/spf13/cobra"
)

// newSource builds the catalog source described by the settings.
func newSource(cfg config.CatalogSettings) (catalog.Source, error) {
	return catalog.NewSource(cfg.Source, catalog.SourceOptions{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Retry: common.RetryOptions{
			MaxAttempts: cfg.Attempts,
		},
		DemoCount: cfg.DemoCount,
		DemoSeed:  cfg.DemoSeed,
	})
}

// loadCatalog fetches the configured catalog. A failed load is reported as
// a warning and yields an empty catalog, matching the interactive client.
func loadCatalog(ctx context.Context, cmd *cobra.Command) (catalog.Catalog, error) {
	src, err := newSource(settings.Catalog)
	if err != nil {
		return catalog.Catalog{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, settings.Catalog.Timeout)
	defer cancel()

	c := catalog.Load(ctx, src)
	if c.Err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning(fmt.Sprintf("Could not load restaurants from %s: %v", src.Name(), c.Err)))
	}
	return c, nil
}

// poolFor narrows the catalog to a category, or everything when category is
// empty. Unknown categories are a user error.
func poolFor(c catalog.Catalog, category string) ([]model.Restaurant, error) {
	if category == "" {
		category = model.FilterAll
	}
	if _, ok := c.Filter(category); !ok && category != model.FilterAll {
		return nil, common.NewUserError(fmt.Sprintf("Unknown category %q, see 'lunch filters'", category), nil)
	}
	return c.Pool(category), nil
}
