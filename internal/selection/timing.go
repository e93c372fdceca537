package selection

import (
	"fmt"
	"time"

	"github.com/Veraticus/lunch-roulette/internal/common"
)

// Timing controls the shape of a selection cycle.
//
// The fast phase runs for Total-Tail, highlighting every FastInterval.
// The slow phase then runs for Tail, highlighting every SlowInterval,
// and the cycle resolves exactly Tail after the slow phase began.
type Timing struct {
	Total        time.Duration
	Tail         time.Duration
	FastInterval time.Duration
	SlowInterval time.Duration
}

// DefaultTiming returns the classic four second slot-machine spin.
func DefaultTiming() Timing {
	return Timing{
		Total:        4000 * time.Millisecond,
		Tail:         800 * time.Millisecond,
		FastInterval: 80 * time.Millisecond,
		SlowInterval: 250 * time.Millisecond,
	}
}

// FastDuration is the time budget of the fast phase.
func (t Timing) FastDuration() time.Duration {
	return t.Total - t.Tail
}

// Validate reports whether the timing can drive a cycle.
func (t Timing) Validate() error {
	switch {
	case t.Total <= 0:
		return fmt.Errorf("%w: selection total must be positive, got %s", common.ErrInvalidConfig, t.Total)
	case t.Tail <= 0:
		return fmt.Errorf("%w: selection tail must be positive, got %s", common.ErrInvalidConfig, t.Tail)
	case t.Tail > t.Total:
		return fmt.Errorf("%w: selection tail %s exceeds total %s", common.ErrInvalidConfig, t.Tail, t.Total)
	case t.FastInterval <= 0:
		return fmt.Errorf("%w: fast interval must be positive, got %s", common.ErrInvalidConfig, t.FastInterval)
	case t.SlowInterval <= 0:
		return fmt.Errorf("%w: slow interval must be positive, got %s", common.ErrInvalidConfig, t.SlowInterval)
	}
	return nil
}
