// Package selection implements the slot-machine restaurant picker.
//
// An Engine is a finite state machine with the phases Idle, Fast, Slow and
// Resolved. It never sleeps or spawns goroutines: every transition returns a
// Tick describing the single timer the driver must arm next, and the driver
// hands the fired Tick back through Advance. Only the most recently armed
// Tick is accepted, so a transition implicitly cancels the previous timer.
package selection

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/Veraticus/lunch-roulette/internal/model"
	"github.com/google/uuid"
)

// ErrCycleInProgress is returned by drivers when a cycle is already running.
var ErrCycleInProgress = errors.New("selection already in progress")

// Phase is the state of the selection machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFast
	PhaseSlow
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFast:
		return "fast"
	case PhaseSlow:
		return "slow"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Tick is a timer request. After is measured from the moment the Tick was
// issued; the Tick fires into the phase named by Phase. A Tick with
// Phase == PhaseResolved is the resolution timer.
type Tick struct {
	Cycle string
	Phase Phase
	After time.Duration
	Seq   int
}

// Rand is the source of uniform draws. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Option configures an Engine.
type Option func(*Engine)

// WithTiming overrides the default timing.
func WithTiming(t Timing) Option {
	return func(e *Engine) {
		e.timing = t
	}
}

// WithRand sets the random source used for every draw.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithSeed seeds a private random source. A zero seed uses the clock.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // picking lunch, not keys
	}
}

// WithCycleIDs replaces the cycle id generator.
func WithCycleIDs(next func() string) Option {
	return func(e *Engine) {
		e.newCycleID = next
	}
}

// Engine runs selection cycles over a pool of restaurants.
type Engine struct {
	rng         Rand
	newCycleID  func() string
	pending     Tick
	cycle       string
	pool        []model.Restaurant
	timing      Timing
	fastElapsed time.Duration
	slowElapsed time.Duration
	seq         int
	active      model.Restaurant
	selected    model.Restaurant
	phase       Phase
	hasActive   bool
	hasSelected bool
	showResult  bool
}

// New creates an idle engine.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		timing:     DefaultTiming(),
		newCycleID: uuid.NewString,
		phase:      PhaseIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		WithSeed(0)(e)
	}
	if err := e.timing.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Start begins a cycle over pool and returns the first timer to arm.
// It reports false and changes nothing when pool is empty or a cycle is
// already running.
func (e *Engine) Start(pool []model.Restaurant) (Tick, bool) {
	if e.Spinning() || len(pool) == 0 {
		return Tick{}, false
	}

	e.pool = make([]model.Restaurant, len(pool))
	copy(e.pool, pool)

	e.cycle = e.newCycleID()
	if e.cycle == "" {
		// An empty cycle can never match a tick.
		e.cycle = uuid.NewString()
	}
	e.phase = PhaseFast
	e.fastElapsed = 0
	e.slowElapsed = 0
	e.hasActive = false
	e.active = model.Restaurant{}
	e.hasSelected = false
	e.selected = model.Restaurant{}
	e.showResult = false

	slog.Debug("Selection cycle started",
		"cycle", e.cycle,
		"pool_size", len(e.pool),
		"total", e.timing.Total)

	return e.arm(PhaseFast, e.timing.FastInterval), true
}

// Advance consumes a fired timer. Ticks that are not the currently armed
// one are ignored. It returns the next timer and true while the cycle is
// still running, or a zero Tick and false once nothing more is armed.
func (e *Engine) Advance(t Tick) (Tick, bool) {
	if !e.Accepts(t) {
		return Tick{}, false
	}
	e.pending = Tick{}

	switch t.Phase {
	case PhaseFast:
		e.highlight()
		e.fastElapsed += t.After
		if e.fastElapsed >= e.timing.FastDuration() {
			e.phase = PhaseSlow
			return e.armSlow(), true
		}
		return e.arm(PhaseFast, e.timing.FastInterval), true

	case PhaseSlow:
		e.highlight()
		e.slowElapsed += t.After
		return e.armSlow(), true

	case PhaseResolved:
		e.slowElapsed += t.After
		e.resolve()
		return Tick{}, false
	}

	return Tick{}, false
}

// Accepts reports whether t is the timer currently armed.
func (e *Engine) Accepts(t Tick) bool {
	return e.Spinning() && t.Cycle != "" && t == e.pending
}

// Dismiss hides the result. The selected restaurant is kept until the next
// cycle starts.
func (e *Engine) Dismiss() {
	e.showResult = false
}

// armSlow arms either the next slow highlight or, when the tail is about to
// run out, the resolution timer. The slow timer never outlives the tail.
func (e *Engine) armSlow() Tick {
	remaining := e.timing.Tail - e.slowElapsed
	if remaining <= e.timing.SlowInterval {
		return e.arm(PhaseResolved, remaining)
	}
	return e.arm(PhaseSlow, e.timing.SlowInterval)
}

func (e *Engine) arm(phase Phase, after time.Duration) Tick {
	e.seq++
	e.pending = Tick{
		Cycle: e.cycle,
		Phase: phase,
		After: after,
		Seq:   e.seq,
	}
	return e.pending
}

func (e *Engine) draw() model.Restaurant {
	return e.pool[e.rng.Intn(len(e.pool))]
}

func (e *Engine) highlight() {
	e.active = e.draw()
	e.hasActive = true
}

func (e *Engine) resolve() {
	final := e.draw()
	e.active = final
	e.hasActive = true
	e.selected = final
	e.hasSelected = true
	e.phase = PhaseResolved
	e.showResult = true

	slog.Debug("Selection cycle resolved",
		"cycle", e.cycle,
		"restaurant_id", final.ID,
		"restaurant", final.Name)
}
