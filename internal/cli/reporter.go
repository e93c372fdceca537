package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Veraticus/lunch-roulette/internal/model"
	"github.com/Veraticus/lunch-roulette/internal/selection"
	"github.com/schollz/progressbar/v3"
)

// SpinReporter shows a running selection cycle as a progress bar whose
// description is the currently highlighted restaurant.
type SpinReporter struct {
	writer      io.Writer
	progressBar *progressbar.ProgressBar
	total       int64
	highlights  int
}

var _ selection.Observer = (*SpinReporter)(nil)

// NewSpinReporter creates a reporter for a cycle of the given total length.
func NewSpinReporter(writer io.Writer, total time.Duration) *SpinReporter {
	if writer == nil {
		writer = os.Stdout
	}

	r := &SpinReporter{writer: writer, total: total.Milliseconds()}
	r.progressBar = progressbar.NewOptions64(r.total,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan][bold]"+DiceIcon+" 选择中...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[yellow]=[reset]",
			SaucerHead:    "[yellow]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
	return r
}

// Highlight implements selection.Observer.
func (r *SpinReporter) Highlight(restaurant model.Restaurant, _ selection.Phase, elapsed time.Duration) {
	r.highlights++
	r.progressBar.Describe(fmt.Sprintf("%s %s", restaurant.Image, restaurant.Name))
	// The fast phase can run past its budget; only Resolved may fill the bar.
	progress := min(elapsed.Milliseconds(), max(r.total-1, 0))
	if err := r.progressBar.Set64(progress); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// Resolved implements selection.Observer.
func (r *SpinReporter) Resolved(restaurant model.Restaurant) {
	r.progressBar.Describe(fmt.Sprintf("%s %s", restaurant.Image, restaurant.Name))
	if err := r.progressBar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
}

// Highlights returns how many highlights were shown.
func (r *SpinReporter) Highlights() int {
	return r.highlights
}
