package selection

import (
	"time"

	"github.com/Veraticus/lunch-roulette/internal/model"
)

// Snapshot is a read-only view of the selection state.
type Snapshot struct {
	Cycle       string
	Phase       Phase
	Elapsed     time.Duration
	ActiveID    int
	SelectedID  int
	PoolSize    int
	Spinning    bool
	HasActive   bool
	HasSelected bool
	ShowResult  bool
}

// Spinning reports whether a cycle is in progress.
func (e *Engine) Spinning() bool {
	return e.phase == PhaseFast || e.phase == PhaseSlow
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Cycle returns the id of the current or most recent cycle.
func (e *Engine) Cycle() string {
	return e.cycle
}

// Timing returns the timing the engine was built with.
func (e *Engine) Timing() Timing {
	return e.timing
}

// Elapsed returns how far into the current cycle the engine has advanced.
func (e *Engine) Elapsed() time.Duration {
	return e.fastElapsed + e.slowElapsed
}

// Active returns the highlighted restaurant, if any.
func (e *Engine) Active() (model.Restaurant, bool) {
	return e.active, e.hasActive
}

// Selected returns the restaurant chosen by the last completed cycle.
func (e *Engine) Selected() (model.Restaurant, bool) {
	return e.selected, e.hasSelected
}

// ShowResult reports whether the result should be displayed.
func (e *Engine) ShowResult() bool {
	return e.showResult
}

// Pool returns a copy of the pool captured by the current or last cycle.
func (e *Engine) Pool() []model.Restaurant {
	pool := make([]model.Restaurant, len(e.pool))
	copy(pool, e.pool)
	return pool
}

// Snapshot captures the observable state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Cycle:       e.cycle,
		Phase:       e.phase,
		Elapsed:     e.Elapsed(),
		ActiveID:    e.active.ID,
		SelectedID:  e.selected.ID,
		PoolSize:    len(e.pool),
		Spinning:    e.Spinning(),
		HasActive:   e.hasActive,
		HasSelected: e.hasSelected,
		ShowResult:  e.showResult,
	}
}
