package scrollfx

import "github.com/edwinsyarief/scrollfx/marquee"

// See [Controller.Marquee]().
type AccessorMarquee struct{ ctrl *Controller }

// Provides access to the offers marquee in a structured manner.
// Use through method chaining, e.g.:
//
//	ctrl.Marquee().SetItems([]string{"Free shipping"})
func (self *Controller) Marquee() AccessorMarquee { return AccessorMarquee{self} }

// Shows the marquee. Marquees are shown by default, but they stay
// idle until the first viewport notification and while suppressed.
func (self AccessorMarquee) Show() {
	self.ctrl.marqueeSetWanted(true)
}

// Hides the marquee. Hidden marquees are idle and their offset
// goes back to zero.
func (self AccessorMarquee) Hide() {
	self.ctrl.marqueeSetWanted(false)
}

// Returns the current horizontal offset of the track, in px. Always
// in (-UnitWidth, 0] while running.
func (self AccessorMarquee) Offset() float64 {
	return self.ctrl.scroller.Offset()
}

// Returns the current phase.
func (self AccessorMarquee) Phase() marquee.Phase {
	return self.ctrl.scroller.Phase()
}

// Returns the measured width of one copy of the items, in px.
func (self AccessorMarquee) UnitWidth() float64 {
	return self.ctrl.scroller.UnitWidth()
}

// Returns a snapshot of the marquee state.
func (self AccessorMarquee) State() marquee.State {
	return self.ctrl.scroller.State()
}

// Reports the width of the rendered content box. Viewport changes
// are reported automatically; this is only needed when the content
// can reflow for other reasons (e.g. late font loads).
func (self AccessorMarquee) ObserveContentWidth(width float64) {
	self.ctrl.marqueeObserveContentWidth(width)
}

// Replaces the marquee items. Visible marquees measure the new items
// before moving again.
func (self AccessorMarquee) SetItems(items []string) {
	self.ctrl.marqueeSetItems(items)
}

// Returns a copy of the current items.
func (self AccessorMarquee) Items() []string {
	return self.ctrl.scroller.Items()
}

// Returns the number of item copies needed to cover the current
// viewport width.
func (self AccessorMarquee) Copies() int {
	return self.ctrl.scroller.Copies(self.ctrl.viewportWidth)
}

// Returns the bar height for the current device class, in px.
func (self AccessorMarquee) Height() float64 {
	return self.ctrl.marqueeHeight()
}
