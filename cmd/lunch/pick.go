package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/lunch-roulette/internal/cli"
	"github.com/Veraticus/lunch-roulette/internal/common"
	"github.com/Veraticus/lunch-roulette/internal/selection"
	"github.com/spf13/cobra"
)

func pickCmd() *cobra.Command {
	var (
		category string
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a restaurant without the interactive UI",
		Long: `Run one selection cycle in real time and print the winner.

The cycle takes as long as the configured selection.total; a progress bar
follows the highlight while it spins.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			c, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}
			if c.Empty() {
				return common.NewUserError("The catalog has no restaurants", common.ErrEmptyPool)
			}
			pool, err := poolFor(c, category)
			if err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatInfo(fmt.Sprintf("Picking from %d of %d restaurants", len(pool), len(c.Restaurants))))
			}

			engine, err := selection.New(
				selection.WithTiming(settings.Selection.Timing()),
				selection.WithSeed(settings.Selection.Seed),
			)
			if err != nil {
				return err
			}

			var observer selection.Observer = selection.NopObserver{}
			if !quiet {
				observer = cli.NewSpinReporter(cmd.ErrOrStderr(), settings.Selection.Total)
			}

			chosen, err := selection.NewRunner(engine, observer).Run(ctx, pool)
			if err != nil {
				if errors.Is(err, common.ErrEmptyPool) {
					return common.NewUserError("No restaurants to choose from", err)
				}
				return fmt.Errorf("selection failed: %w", err)
			}

			slog.Debug("Restaurant picked", "cycle", engine.Cycle(), "restaurant_id", chosen.ID)
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderResult(chosen))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only pick from this category")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not draw the progress bar")

	return cmd
}
