package frame

import "time"

// Default quiescence window for resize-driven recomputations.
const DefaultDebounceWindow = 150 * time.Millisecond

// Poll-based debouncer. Bursts of notifications collapse into a
// single ready signal once no new notification has arrived for
// Window. Meant to be polled from the same frame context that
// receives the notifications, so it has no locking and no timers.
type Debouncer struct {
	Window  time.Duration
	last    time.Time
	pending bool
}

// Creates a debouncer with the given window. A zero or negative
// window defaults to [DefaultDebounceWindow].
func NewDebouncer(window time.Duration) Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return Debouncer{Window: window}
}

// Registers an event at the given time, restarting the window.
func (self *Debouncer) Notify(now time.Time) {
	self.last = now
	self.pending = true
}

// Returns true exactly once per burst, on the first poll made after
// the window has elapsed without new notifications.
func (self *Debouncer) Ready(now time.Time) bool {
	if !self.pending || now.Sub(self.last) < self.Window {
		return false
	}
	self.pending = false
	return true
}

// Returns whether a burst is waiting for quiescence.
func (self *Debouncer) Pending() bool {
	return self.pending
}

// Drops any pending burst.
func (self *Debouncer) Reset() {
	self.pending = false
}
