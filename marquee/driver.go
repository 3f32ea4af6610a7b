package marquee

import (
	"context"
	"sync"
	"time"

	"github.com/edwinsyarief/scrollfx/frame"
)

// Owns a [Scroller] and the [frame.Loop] that animates it, for hosts
// that don't have a game loop of their own.
//
// Showing the driver starts the loop and hiding it cancels the loop
// before the scroller goes idle, so no frame can run on a hidden
// marquee. All methods are safe for concurrent use.
type Driver struct {
	// serializes Show and Hide as a whole; never taken by frames
	lifecycle sync.Mutex

	mu       sync.Mutex
	scroller *Scroller
	clock    frame.Clock
	loop     *frame.Loop
	onFrame  func(State)
}

// Creates a driver for the given scroller. The onFrame callback, if
// not nil, receives the state after every frame, on the loop goroutine.
func NewDriver(scroller *Scroller, clock frame.Clock, interval time.Duration, onFrame func(State)) *Driver {
	if scroller == nil {
		panic("marquee driver scroller can't be nil")
	}
	if clock == nil {
		clock = frame.SystemClock{}
	}
	driver := &Driver{scroller: scroller, clock: clock, onFrame: onFrame}
	driver.loop = frame.NewLoop(interval, clock, driver.frame)
	return driver
}

// Shows the marquee and starts the frame loop. Showing a visible
// marquee does nothing.
func (self *Driver) Show(ctx context.Context) {
	self.lifecycle.Lock()
	defer self.lifecycle.Unlock()
	self.mu.Lock()
	self.scroller.Show()
	self.mu.Unlock()
	self.loop.Start(ctx)
}

// Cancels the frame loop and hides the marquee.
func (self *Driver) Hide() {
	self.lifecycle.Lock()
	defer self.lifecycle.Unlock()
	self.loop.Stop()
	self.mu.Lock()
	self.scroller.Hide()
	self.mu.Unlock()
}

// Forwards a content box width observation to the scroller.
func (self *Driver) ObserveContentWidth(width float64) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.scroller.ObserveContentWidth(width, self.clock.Now())
}

// Replaces the marquee items.
func (self *Driver) SetItems(items []string) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.scroller.SetItems(items)
}

// Returns a snapshot of the scroller state.
func (self *Driver) State() State {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.scroller.State()
}

// Returns whether the frame loop is running.
func (self *Driver) Animating() bool {
	return self.loop.Running()
}

func (self *Driver) frame(now time.Time) {
	self.mu.Lock()
	state := self.scroller.Step(now)
	self.mu.Unlock()
	if self.onFrame != nil {
		self.onFrame(state)
	}
}
