// Package main runs the roulette against a generated catalog, for trying the
// UI without a restaurant file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Veraticus/lunch-roulette/internal/catalog"
	"github.com/Veraticus/lunch-roulette/internal/tui"
	"github.com/Veraticus/lunch-roulette/internal/tui/themes"
)

func main() {
	count := flag.Int("count", 40, "number of generated restaurants")
	seed := flag.Int64("seed", 1, "seed for the generated catalog and the draws")
	theme := flag.String("theme", "default", "theme name")
	flag.Parse()

	err := tui.Run(context.Background(),
		tui.WithSource(catalog.DemoSource{Count: *count, Seed: *seed}),
		tui.WithTheme(themes.GetTheme(*theme)),
		tui.WithSeed(*seed),
		tui.WithSize(120, 40),
	)
	if err != nil {
		// Use explicit error check to satisfy forbidigo
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
