package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/lunch-roulette/internal/common"
	"github.com/Veraticus/lunch-roulette/internal/config"
	"github.com/Veraticus/lunch-roulette/internal/tui"
	"github.com/Veraticus/lunch-roulette/internal/tui/themes"
	"github.com/spf13/cobra"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive roulette (default)",
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	closeLog, err := redirectLogging(settings.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	src, err := newSource(settings.Catalog)
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(),
		tui.WithSource(src),
		tui.WithTheme(themes.GetTheme(settings.TUI.Theme)),
		tui.WithTiming(settings.Selection.Timing()),
		tui.WithSeed(settings.Selection.Seed),
		tui.WithLoadTimeout(settings.Catalog.Timeout),
	)
}

// redirectLogging keeps log lines off the alternate screen: they go to the
// configured file, or nowhere.
func redirectLogging(cfg config.LoggingSettings) (func(), error) {
	level, err := common.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if cfg.File == "" {
		return func() {}, common.SetupLogger(io.Discard, level, cfg.Format)
	}

	f, err := os.OpenFile(config.ExpandPath(cfg.File), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if err := common.SetupLogger(f, level, cfg.Format); err != nil {
		_ = f.Close()
		return nil, err
	}

	return func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close log file", "error", err)
		}
	}, nil
}
