package marquee

import (
	"math"
	"slices"
	"time"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/scrollfx/frame"
	"go.uber.org/zap"
)

// The minimum number of item copies on a marquee track.
const MinCopies = 3

// A marquee scroller. See the package documentation for details.
type Scroller struct {
	config   Config
	measurer Measurer
	items    []string
	logger   *zap.Logger

	phase     Phase
	unitWidth float64
	offset    float64

	lastFrame    time.Time
	hasLastFrame bool

	observedWidth float64
	hasObserved   bool
	resize        frame.Debouncer
}

// Creates a new scroller in the [Idle] phase.
func NewScroller(config Config, measurer Measurer, items []string) *Scroller {
	if measurer == nil {
		panic("marquee measurer can't be nil")
	}
	return &Scroller{
		config:   config,
		measurer: measurer,
		items:    slices.Clone(items),
		logger:   zap.NewNop(),
		resize:   frame.NewDebouncer(config.DebounceWindow),
	}
}

// Sets the logger used for phase transitions. Passing nil disables
// logging.
func (self *Scroller) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	self.logger = logger
}

// Returns the scroller configuration.
func (self *Scroller) Config() Config {
	return self.config
}

// Returns a copy of the current items.
func (self *Scroller) Items() []string {
	return slices.Clone(self.items)
}

// Replaces the marquee items. Visible scrollers go back to [Measuring]
// so the new content gets measured before moving again.
func (self *Scroller) SetItems(items []string) {
	self.items = slices.Clone(items)
	self.Remeasure()
}

// Changes the extra width added after each item. Visible scrollers
// go back to [Measuring] so the unit width picks up the new gap.
func (self *Scroller) SetItemGap(gap float64) {
	if gap == self.config.ItemGap {
		return
	}
	self.config.ItemGap = gap
	self.Remeasure()
}

// Forces a new measurement on the next frame, skipping the resize
// debounce. Used when the rendered text changes without the content
// box changing (fonts, letter-spacing). Idle scrollers ignore it.
func (self *Scroller) Remeasure() {
	if self.phase != Idle {
		self.transition(Measuring)
	}
}

// Makes the scroller visible. Idle scrollers start measuring; calling
// Show on a visible scroller does nothing.
func (self *Scroller) Show() {
	if self.phase == Idle {
		self.transition(Measuring)
	}
}

// Hides the scroller. The offset is reset to zero and pending resize
// bursts are dropped. The measured unit width is kept as a reference
// for the next measurement.
func (self *Scroller) Hide() {
	self.offset = 0
	self.hasLastFrame = false
	self.resize.Reset()
	if self.phase != Idle {
		self.transition(Idle)
	}
}

// Reports the current width of the rendered content box, as given by
// a size observer. Changes larger than the tolerance restart the
// debounce window; once the window elapses without further changes a
// running scroller goes back to [Measuring].
func (self *Scroller) ObserveContentWidth(width float64, now time.Time) {
	if !self.hasObserved {
		self.observedWidth, self.hasObserved = width, true
		return
	}
	if ebimath.Abs(width-self.observedWidth) <= self.config.Tolerance {
		return
	}
	self.observedWidth = width
	if self.phase != Idle {
		self.resize.Notify(now)
	}
}

// Runs a single frame at the given time and returns the resulting
// state. Idle scrollers don't change. Measuring scrollers measure and
// start running on the following frame if the measured width is
// positive. Running scrollers advance by the time elapsed since the
// previous frame.
func (self *Scroller) Step(now time.Time) State {
	switch self.phase {
	case Idle:
		return self.State()
	case Running:
		if self.resize.Ready(now) {
			self.transition(Measuring)
		}
	}

	if self.phase == Measuring {
		self.Measure()
		if self.unitWidth > 0 {
			self.transition(Running)
		}
		return self.State()
	}

	var dt float64
	if self.hasLastFrame {
		dt = now.Sub(self.lastFrame).Seconds()
	}
	self.lastFrame, self.hasLastFrame = now, true
	self.Advance(dt)
	return self.State()
}

// Moves the offset by the given elapsed time, in seconds. The time is
// capped to Config.MaxFrameDelta. Does nothing unless the scroller is
// [Running] with a positive unit width.
func (self *Scroller) Advance(seconds float64) {
	if self.phase != Running || !(self.unitWidth > 0) {
		return
	}
	if !(seconds > 0) {
		return
	}
	if self.config.MaxFrameDelta > 0 && seconds > self.config.MaxFrameDelta {
		seconds = self.config.MaxFrameDelta
	}

	self.offset -= self.config.Speed * seconds
	self.wrap()
}

// Measures the width of one copy of the items and updates the unit
// width if it was never set or it changed by more than the tolerance.
// Returns the freshly measured width.
func (self *Scroller) Measure() float64 {
	var width float64
	for _, item := range self.items {
		width += self.measurer.Measure(item) + self.config.ItemGap
	}
	if math.IsNaN(width) || math.IsInf(width, 0) {
		width = 0
	}

	if self.unitWidth == 0 || ebimath.Abs(width-self.unitWidth) > self.config.Tolerance {
		self.logger.Debug("marquee unit width updated",
			zap.Float64("previous", self.unitWidth),
			zap.Float64("current", width),
			zap.Int("items", len(self.items)))
		self.unitWidth = width
		if width > 0 {
			self.wrap()
		}
	}
	return width
}

// Returns the number of item copies the rendered track needs to
// cover the given viewport width without gaps. Never less than
// [MinCopies].
func (self *Scroller) Copies(viewportWidth float64) int {
	if !(self.unitWidth > 0) || !(viewportWidth > 0) {
		return MinCopies
	}
	copies := int(math.Ceil(viewportWidth/self.unitWidth)) + 1
	return max(copies, MinCopies)
}

// Returns a snapshot of the current state.
func (self *Scroller) State() State {
	return State{UnitWidth: self.unitWidth, Offset: self.offset, Phase: self.phase}
}

func (self *Scroller) Phase() Phase {
	return self.phase
}

func (self *Scroller) Offset() float64 {
	return self.offset
}

func (self *Scroller) UnitWidth() float64 {
	return self.unitWidth
}

// Returns whether a content box change is waiting for quiescence.
func (self *Scroller) ResizePending() bool {
	return self.resize.Pending()
}

// Adds back (or removes) exactly one unit width until the offset is
// within (-unitWidth, unitWidth). Never snaps to zero. Offsets that
// are several units away (huge speeds, shrinking units) are folded
// first, and non-finite offsets restart from zero.
func (self *Scroller) wrap() {
	if math.IsNaN(self.offset) || math.IsInf(self.offset, 0) {
		self.offset = 0
		return
	}
	if ebimath.Abs(self.offset) >= 2*self.unitWidth {
		self.offset = math.Mod(self.offset, self.unitWidth)
	}
	if self.offset <= -self.unitWidth {
		self.offset += self.unitWidth
	} else if self.offset >= self.unitWidth {
		self.offset -= self.unitWidth
	}
}

func (self *Scroller) transition(to Phase) {
	from := self.phase
	if from == to {
		return
	}
	self.phase = to
	if to != Running {
		self.hasLastFrame = false
	}
	if to == Measuring {
		self.resize.Reset()
	}
	self.logger.Debug("marquee phase transition",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Float64("unitWidth", self.unitWidth))
}
