package frame

import (
	"sync"
	"time"
)

// Time source for frame loops and debouncers.
type Clock interface {
	Now() time.Time
}

// Wall clock with monotonic readings.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Controllable clock, mostly for tests and deterministic replays.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// Creates a manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (self *ManualClock) Now() time.Time {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return self.now
}

func (self *ManualClock) Set(now time.Time) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.now = now
}

func (self *ManualClock) Advance(d time.Duration) time.Time {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.now = self.now.Add(d)
	return self.now
}
