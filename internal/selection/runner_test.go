package selection

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/lunch-roulette/internal/common"
	"github.com/Veraticus/lunch-roulette/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu         sync.Mutex
	highlights []int
	phases     []Phase
	resolved   []int
}

func (o *recordingObserver) Highlight(r model.Restaurant, phase Phase, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.highlights = append(o.highlights, r.ID)
	o.phases = append(o.phases, phase)
}

func (o *recordingObserver) Resolved(r model.Restaurant) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resolved = append(o.resolved, r.ID)
}

func quickTiming() Timing {
	return Timing{
		Total:        20 * time.Millisecond,
		Tail:         8 * time.Millisecond,
		FastInterval: 2 * time.Millisecond,
		SlowInterval: 3 * time.Millisecond,
	}
}

func TestRunner_Run(t *testing.T) {
	e := newTestEngine(t, WithTiming(quickTiming()), WithSeed(21))
	obs := &recordingObserver{}
	runner := NewRunner(e, obs)

	start := time.Now()
	selected, err := runner.Run(context.Background(), restaurants(1, 2, 3))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), quickTiming().Total)
	assert.Contains(t, []int{1, 2, 3}, selected.ID)
	assert.Equal(t, []int{selected.ID}, obs.resolved)
	assert.NotEmpty(t, obs.highlights)
	for _, id := range obs.highlights {
		assert.Contains(t, []int{1, 2, 3}, id)
	}
	assert.Contains(t, obs.phases, PhaseSlow)
	assert.True(t, e.ShowResult())
}

func TestRunner_SingleEntryPool(t *testing.T) {
	e := newTestEngine(t, WithTiming(quickTiming()))
	selected, err := NewRunner(e, nil).Run(context.Background(), restaurants(7))
	require.NoError(t, err)
	assert.Equal(t, 7, selected.ID)
}

func TestRunner_EmptyPool(t *testing.T) {
	e := newTestEngine(t, WithTiming(quickTiming()))
	_, err := NewRunner(e, nil).Run(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrEmptyPool)
	assert.Equal(t, PhaseIdle, e.Phase())
}

func TestRunner_CycleAlreadyRunning(t *testing.T) {
	e := newTestEngine(t, WithTiming(quickTiming()))
	_, ok := e.Start(restaurants(1))
	require.True(t, ok)

	_, err := NewRunner(e, nil).Run(context.Background(), restaurants(2))
	assert.ErrorIs(t, err, ErrCycleInProgress)
}

func TestRunner_ContextCancelled(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(e, nil).Run(ctx, restaurants(1, 2))
	assert.ErrorIs(t, err, context.Canceled)
}
