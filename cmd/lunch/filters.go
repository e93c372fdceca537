package main

import (
	"fmt"

	"github.com/Veraticus/lunch-roulette/internal/cli"
	"github.com/spf13/cobra"
)

func filtersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the category filters with their counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderFilters(c.Filters))
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List restaurants, optionally narrowed to a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			pool, err := poolFor(c, category)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderList(pool))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list this category")

	return cmd
}
