package selection

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/lunch-roulette/internal/common"
	"github.com/Veraticus/lunch-roulette/internal/model"
)

// Observer receives the visible effects of a cycle driven by a Runner.
type Observer interface {
	Highlight(r model.Restaurant, phase Phase, elapsed time.Duration)
	Resolved(r model.Restaurant)
}

// NopObserver ignores everything.
type NopObserver struct{}

// Highlight implements Observer.
func (NopObserver) Highlight(model.Restaurant, Phase, time.Duration) {}

// Resolved implements Observer.
func (NopObserver) Resolved(model.Restaurant) {}

// Runner drives an Engine with real timers in the calling goroutine.
type Runner struct {
	engine   *Engine
	observer Observer
}

// NewRunner creates a runner. A nil observer is replaced with NopObserver.
func NewRunner(engine *Engine, observer Observer) *Runner {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Runner{
		engine:   engine,
		observer: observer,
	}
}

// Run performs one full cycle over pool and returns the selected restaurant.
// Cancelling ctx stops the driver; the engine is left mid-cycle.
func (r *Runner) Run(ctx context.Context, pool []model.Restaurant) (model.Restaurant, error) {
	if len(pool) == 0 {
		return model.Restaurant{}, common.ErrEmptyPool
	}

	tick, ok := r.engine.Start(pool)
	if !ok {
		return model.Restaurant{}, ErrCycleInProgress
	}

	timer := time.NewTimer(tick.After)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return model.Restaurant{}, ctx.Err()
		case <-timer.C:
		}

		next, more := r.engine.Advance(tick)
		if !more {
			selected, found := r.engine.Selected()
			if !found {
				return model.Restaurant{}, fmt.Errorf("cycle %s ended without a selection", tick.Cycle)
			}
			r.observer.Resolved(selected)
			return selected, nil
		}

		if active, found := r.engine.Active(); found {
			r.observer.Highlight(active, r.engine.Phase(), r.engine.Elapsed())
		}

		tick = next
		timer.Reset(tick.After)
	}
}
