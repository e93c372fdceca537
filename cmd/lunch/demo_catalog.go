package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/lunch-roulette/internal/catalog"
	"github.com/Veraticus/lunch-roulette/internal/cli"
	"github.com/Veraticus/lunch-roulette/internal/common"
	"github.com/Veraticus/lunch-roulette/internal/config"
	"github.com/spf13/cobra"
)

func demoCatalogCmd() *cobra.Command {
	var (
		count  int
		seed   int64
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "demo-catalog",
		Short: "Generate a catalog of made-up restaurants",
		Long: `Generate a catalog of made-up restaurants for trying things out.

The result can be fed back with --source or catalog.source.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return common.NewUserError("--count must be at least 1", common.ErrInvalidConfig)
			}

			f := catalog.FormatFromPath(output)
			if cmd.Flags().Changed("format") || output == "" {
				parsed, err := catalog.ParseFormat(format)
				if err != nil {
					return common.NewUserError(fmt.Sprintf("Unsupported format %q", format), err)
				}
				f = parsed
			}

			restaurants := catalog.GenerateDemo(count, seed)

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(config.ExpandPath(output))
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() {
					if closeErr := file.Close(); closeErr != nil {
						slog.Warn("Failed to close output file", "error", closeErr)
					}
				}()
				w = file
			}

			if err := catalog.Encode(w, restaurants, f); err != nil {
				return fmt.Errorf("failed to write catalog: %w", err)
			}

			if output != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(fmt.Sprintf("Wrote %d restaurants to %s", len(restaurants), output)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 24, "number of restaurants")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}
