package frame

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoop_RunsAndStops(t *testing.T) {
	var frames atomic.Int64
	loop := NewLoop(time.Millisecond, nil, func(time.Time) { frames.Add(1) })

	require.True(t, loop.Start(context.Background()))
	assert.Eventually(t, func() bool { return frames.Load() >= 3 }, time.Second, time.Millisecond)

	loop.Stop()
	assert.False(t, loop.Running())

	stopped := frames.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, frames.Load(), "callback ran after Stop returned")
}

func TestLoop_StartIsIdempotent(t *testing.T) {
	var inFlight, maxInFlight atomic.Int64
	loop := NewLoop(time.Millisecond, nil, func(time.Time) {
		n := inFlight.Add(1)
		for {
			prev := maxInFlight.Load()
			if n <= prev || maxInFlight.CompareAndSwap(prev, n) {
				break
			}
		}
		time.Sleep(100 * time.Microsecond)
		inFlight.Add(-1)
	})
	defer loop.Stop()

	require.True(t, loop.Start(context.Background()))
	for i := 0; i < 10; i++ {
		assert.False(t, loop.Start(context.Background()))
	}
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(1), maxInFlight.Load())
}

func TestLoop_StopIsSafeRepeatedly(t *testing.T) {
	loop := NewLoop(time.Millisecond, nil, func(time.Time) {})
	loop.Stop()
	require.True(t, loop.Start(context.Background()))
	loop.Stop()
	loop.Stop()
	assert.False(t, loop.Running())

	// restart after stop
	require.True(t, loop.Start(context.Background()))
	assert.True(t, loop.Running())
	loop.Stop()
}

func TestLoop_ParentContextCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(time.Millisecond, nil, func(time.Time) {})

	require.True(t, loop.Start(ctx))
	cancel()
	assert.Eventually(t, func() bool { return !loop.Running() }, time.Second, time.Millisecond)

	// a loop that ended on its own can be started again
	require.True(t, loop.Start(context.Background()))
	loop.Stop()
}

func TestLoop_UsesClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	seen := make(chan time.Time, 1)
	loop := NewLoop(time.Millisecond, clock, func(now time.Time) {
		select {
		case seen <- now:
		default:
		}
	})

	require.True(t, loop.Start(context.Background()))
	got := <-seen
	loop.Stop()
	assert.Equal(t, start, got)
}

func TestLoop_Defaults(t *testing.T) {
	loop := NewLoop(0, nil, func(time.Time) {})
	assert.Equal(t, DefaultInterval, loop.Interval())
	assert.Panics(t, func() { NewLoop(time.Millisecond, nil, nil) })
}

func TestDebouncer_CollapsesBursts(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	debouncer := NewDebouncer(150 * time.Millisecond)

	assert.False(t, debouncer.Ready(start))

	// resize burst: one event every 20ms for 200ms
	now := start
	for i := 0; i < 10; i++ {
		debouncer.Notify(now)
		now = now.Add(20 * time.Millisecond)
		assert.False(t, debouncer.Ready(now))
	}
	assert.True(t, debouncer.Pending())

	last := now.Add(-20 * time.Millisecond)
	assert.False(t, debouncer.Ready(last.Add(149*time.Millisecond)))
	assert.True(t, debouncer.Ready(last.Add(150*time.Millisecond)))
	assert.False(t, debouncer.Ready(last.Add(500*time.Millisecond)))
	assert.False(t, debouncer.Pending())
}

func TestDebouncer_Reset(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	debouncer := NewDebouncer(0)
	assert.Equal(t, DefaultDebounceWindow, debouncer.Window)

	debouncer.Notify(now)
	debouncer.Reset()
	assert.False(t, debouncer.Ready(now.Add(time.Second)))
}

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	assert.Equal(t, start.Add(time.Second), clock.Advance(time.Second))
	clock.Set(start)
	assert.Equal(t, start, clock.Now())
}
