// This package implements a perpetually scrolling, seamlessly
// looping marquee strip.
//
// A [Scroller] measures the width of one copy of its items (the
// "unit width") and then moves a horizontal offset leftwards at a
// constant speed. Whenever the offset travels a full unit, exactly
// one unit width is added back. Since the rendered track repeats the
// items at least three times (see [Scroller.Copies]), the corrected
// position shows the same content as the uncorrected one and the
// loop has no visible seam.
//
// Scrollers have three phases:
//   - [Idle]: hidden or torn down. The offset is held at zero.
//   - [Measuring]: visible, but the unit width is unknown or stale.
//     Nothing moves until a positive width is measured.
//   - [Running]: the offset advances every frame.
//
// Scrollers are not safe for concurrent use. Drive them from a single
// frame context (a game Update, a [frame.Loop] callback...) or use a
// [Driver], which serializes access and owns its frame loop.
package marquee

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// The fastest accepted scroll speed, in pixels per second.
const MaxSpeed = 10_000.0

// The interface used to measure the rendered width of a marquee
// item, in pixels. Measurements of zero or less are considered
// "not laid out yet".
type Measurer interface {
	Measure(item string) float64
}

// Adapter to use plain functions as a [Measurer].
type MeasurerFunc func(item string) float64

func (self MeasurerFunc) Measure(item string) float64 {
	return self(item)
}

// Scroller phases. See the package documentation.
type Phase uint8

const (
	Idle Phase = iota
	Measuring
	Running
)

func (self Phase) String() string {
	switch self {
	case Idle:
		return "Idle"
	case Measuring:
		return "Measuring"
	case Running:
		return "Running"
	default:
		panic("invalid Phase")
	}
}

// Tunable marquee parameters.
type Config struct {
	// Scroll speed in pixels per second.
	Speed float64

	// Extra width added after each item: padding, separator
	// dot and separator margin.
	ItemGap float64

	// Unit width changes smaller or equal to this are ignored,
	// both for measurements and for observed content boxes. This
	// keeps sub-pixel layout jitter from re-triggering measurements.
	Tolerance float64

	// Quiet period required after a content box change before the
	// unit width is measured again.
	DebounceWindow time.Duration

	// Ceiling for the time elapsed between two frames, in seconds.
	// Dropped frames or resumed background tabs never jump further
	// than one tick worth of movement.
	MaxFrameDelta float64
}

// Returns the default marquee configuration: 40px/s, 132px item gap
// (64px padding, 4px dot, 64px margin), 1px tolerance, 150ms
// debounce and a 60Hz frame delta ceiling.
func DefaultConfig() Config {
	return Config{
		Speed:          40,
		ItemGap:        64 + 4 + 64,
		Tolerance:      1,
		DebounceWindow: 150 * time.Millisecond,
		MaxFrameDelta:  1.0 / 60.0,
	}
}

// Reports every out of range tunable. Speeds must be finite and
// within [0, MaxSpeed].
func (self Config) Validate() error {
	var errs []error
	if !(self.Speed >= 0) || self.Speed > MaxSpeed {
		errs = append(errs, fmt.Errorf("marquee speed must be within [0, %v] px/s, got %v", MaxSpeed, self.Speed))
	}
	if !(self.ItemGap >= 0) || math.IsInf(self.ItemGap, 0) {
		errs = append(errs, fmt.Errorf("marquee item gap must be finite and non-negative, got %v", self.ItemGap))
	}
	if !(self.Tolerance >= 0) || math.IsInf(self.Tolerance, 0) {
		errs = append(errs, fmt.Errorf("marquee tolerance must be finite and non-negative, got %v", self.Tolerance))
	}
	if self.DebounceWindow < 0 {
		errs = append(errs, errors.New("marquee debounce window can't be negative"))
	}
	return errors.Join(errs...)
}

// Snapshot of a scroller's state.
type State struct {
	UnitWidth float64
	Offset    float64
	Phase     Phase
}

// Returns whether the unit width is known and the marquee is moving.
func (self State) Ready() bool {
	return self.Phase == Running
}
