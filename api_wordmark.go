package scrollfx

import (
	"github.com/edwinsyarief/scrollfx/metrics"
	"github.com/edwinsyarief/scrollfx/morph"
)

// See [Controller.Wordmark]().
type AccessorWordmark struct{ ctrl *Controller }

// Provides access to the scroll-morphing wordmark in a structured
// manner. Use through method chaining, e.g.:
//
//	frame := ctrl.Wordmark().Frame()
func (self *Controller) Wordmark() AccessorWordmark { return AccessorWordmark{self} }

// Returns the wordmark label.
func (self AccessorWordmark) Label() string {
	return self.ctrl.options.Label
}

// Returns the style frame for the current scroll offset. The
// header anchor is read fresh on every call, so frames follow
// the header even mid-transition.
//
// Before mounting, the frame is computed for an empty viewport
// and should not be rendered.
func (self AccessorWordmark) Frame() morph.StyleFrame {
	return self.ctrl.wordmarkFrameAt(self.ctrl.scroll)
}

// Like [AccessorWordmark.Frame](), but for an arbitrary scroll
// offset. Useful for previews; the result doesn't depend on any
// previously notified scroll offset.
func (self AccessorWordmark) FrameAt(scroll float64) morph.StyleFrame {
	return self.ctrl.wordmarkFrameAt(scroll)
}

// Returns the responsive metrics for the current viewport.
func (self AccessorWordmark) Metrics() metrics.Metrics {
	return self.ctrl.metrics
}

// Returns whether the wordmark should be rendered at all. Hidden
// when suppressed, not yet mounted or scrolled well past the
// threshold. Visibility never affects [AccessorWordmark.Frame]().
func (self AccessorWordmark) Visible() bool {
	return self.ctrl.wordmarkVisible()
}

// Returns whether the header should show its own logo and a solid
// background, which happens as soon as the scroll offset passes the
// threshold.
func (self AccessorWordmark) HeaderSolid() bool {
	return self.ctrl.gate.HeaderSolid(self.ctrl.scroll)
}

// Returns whether the wordmark has been mounted. Mounting happens on
// the first viewport notification, and fixes the hero top position.
func (self AccessorWordmark) Mounted() bool {
	return self.ctrl.mounted
}

// Returns the hero top position fixed at mount, in px.
func (self AccessorWordmark) InitialTop() float64 {
	return self.ctrl.initialTop
}

// Returns the anchor center currently in use and whether it was
// measured (as opposed to the header height fallback).
func (self AccessorWordmark) Anchor() (centerY float64, measured bool) {
	return self.ctrl.wordmarkAnchor(), self.ctrl.anchorMeasured
}

// Returns the last notified scroll offset.
func (self AccessorWordmark) Scroll() float64 {
	return self.ctrl.scroll
}

// Returns the transition domain.
func (self AccessorWordmark) Domain() morph.Domain {
	return self.ctrl.domain
}
