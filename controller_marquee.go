package scrollfx

import "go.uber.org/zap"

func (self *Controller) marqueeVisible() bool {
	return self.mounted && self.marqueeWanted && !self.suppressed
}

// Shows or hides the scroller according to the current state. Hidden
// scrollers go Idle with a zero offset.
func (self *Controller) marqueeSyncVisibility() {
	self.syncLogger()
	if self.marqueeVisible() {
		self.scroller.Show()
	} else {
		self.scroller.Hide()
	}
}

func (self *Controller) marqueeSetWanted(wanted bool) {
	if self.inDraw {
		panic("can't show or hide the marquee during draw stage")
	}
	self.marqueeWanted = wanted
	self.marqueeSyncVisibility()
}

func (self *Controller) marqueeStep() {
	self.scroller.Step(self.clock.Now())
}

func (self *Controller) marqueeObserveViewport() {
	self.scroller.ObserveContentWidth(self.viewportWidth, self.clock.Now())
}

func (self *Controller) marqueeObserveContentWidth(width float64) {
	if self.inDraw {
		panic("can't observe marquee content width during draw stage")
	}
	self.scroller.ObserveContentWidth(width, self.clock.Now())
}

func (self *Controller) marqueeSetItems(items []string) {
	if self.inDraw {
		panic("can't set marquee items during draw stage")
	}
	self.syncLogger()
	self.scroller.SetItems(items)
}

// Applies the item metrics of the current device class. Text changes
// don't change the observed content box, so running scrollers are
// sent back to measuring right away instead of waiting for a resize.
func (self *Controller) applyMarqueeClass() {
	class := self.metrics.Class
	size := self.options.MarqueeFontSizes[class]
	self.marqueeFace.Size = size
	self.marqueeSpacing = self.options.MarqueeLetterSpacings[class]
	if self.textMeasurer != nil {
		self.textMeasurer.SetSize(size)
		self.textMeasurer.SetLetterSpacing(self.marqueeSpacing)
	}
	self.scroller.SetItemGap(self.options.MarqueeGaps[class])
	self.log().Debug(
		"marquee class applied",
		zap.Stringer("class", class),
		zap.Float64("fontSize", size),
		zap.Float64("itemGap", self.options.MarqueeGaps[class]),
	)
	self.marqueeSyncVisibility()
	self.scroller.Remeasure()
}

func (self *Controller) marqueeHeight() float64 {
	return self.options.MarqueeHeights[self.metrics.Class]
}
