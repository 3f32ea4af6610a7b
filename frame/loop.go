// This package provides the scheduling pieces used to drive
// per-frame animations outside of a game loop: a [Loop] with an
// owned cancellation handle and a poll-based [Debouncer].
//
// A loop runs its callback sequentially on a single goroutine, so
// the callback itself never needs locking against other frames.
// Starting a running loop is a no-op and stopping is always safe,
// which keeps visibility toggles from spawning duplicate loops or
// leaking perpetual timers.
package frame

import (
	"context"
	"sync"
	"time"
)

// Frame interval equivalent to a 60Hz display.
const DefaultInterval = time.Second / 60

// Per-frame callback scheduler.
type Loop struct {
	interval time.Duration
	clock    Clock
	callback func(now time.Time)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Creates a new loop. The loop doesn't run until [Loop.Start]() is
// invoked. A zero or negative interval defaults to [DefaultInterval],
// and a nil clock to [SystemClock].
func NewLoop(interval time.Duration, clock Clock, callback func(now time.Time)) *Loop {
	if callback == nil {
		panic("frame loop callback can't be nil")
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{interval: interval, clock: clock, callback: callback}
}

// Starts the loop. Returns false if the loop was already running,
// in which case nothing happens. The loop also stops on its own
// when ctx is done.
func (self *Loop) Start(ctx context.Context) bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	if self.runningLocked() {
		return false
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	self.cancel, self.done = cancel, done
	go self.run(loopCtx, done)
	return true
}

// Stops the loop and waits until the current frame (if any) has
// finished. Safe to call multiple times and on loops that never
// started. Must not be called from the loop callback.
func (self *Loop) Stop() {
	self.mu.Lock()
	cancel, done := self.cancel, self.done
	self.cancel, self.done = nil, nil
	self.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Returns whether the loop goroutine is alive.
func (self *Loop) Running() bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.runningLocked()
}

// Returns the configured frame interval.
func (self *Loop) Interval() time.Duration {
	return self.interval
}

func (self *Loop) runningLocked() bool {
	if self.done == nil {
		return false
	}
	select {
	case <-self.done:
		return false
	default:
		return true
	}
}

func (self *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(self.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// a tick and a cancellation can be ready at the same time
			if ctx.Err() != nil {
				return
			}
			self.callback(self.clock.Now())
		}
	}
}
