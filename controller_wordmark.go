package scrollfx

import (
	"math"

	"github.com/edwinsyarief/scrollfx/morph"
	"go.uber.org/zap"
)

func (self *Controller) notifyScroll(offset float64) {
	if self.inDraw {
		panic("can't notify scroll offset during draw stage")
	}
	if math.IsNaN(offset) {
		panic("scroll offset can't be NaN")
	}
	prevSolid := self.gate.HeaderSolid(self.scroll)
	self.scroll = offset
	if solid := self.gate.HeaderSolid(offset); solid != prevSolid {
		self.log().Debug("header takeover changed", zap.Bool("solid", solid), zap.Float64("scroll", offset))
	}
}

func (self *Controller) notifyAnchor(centerY float64) {
	if self.inDraw {
		panic("can't notify anchor during draw stage")
	}
	if math.IsNaN(centerY) || math.IsInf(centerY, 0) {
		// unmeasurable anchors fall back like missing ones
		self.notifyAnchorLost()
		return
	}
	self.anchorCenterY = centerY
	self.anchorMeasured = true
}

func (self *Controller) notifyAnchorLost() {
	if self.inDraw {
		panic("can't clear anchor during draw stage")
	}
	self.anchorCenterY = 0
	self.anchorMeasured = false
}

// Returns the measured anchor, or the fallback half header height.
func (self *Controller) wordmarkAnchor() float64 {
	if self.anchorMeasured {
		return self.anchorCenterY
	}
	return self.options.HeaderHeight / 2.0
}

func (self *Controller) wordmarkStart() morph.StyleFrame {
	return morph.StyleFrame{
		FontSize:      self.metrics.HeroFontSize,
		LetterSpacing: self.metrics.HeroSpacing,
		Top:           self.initialTop,
		Color:         self.options.HeroColor,
		Opacity:       1,
	}
}

func (self *Controller) wordmarkEnd() morph.StyleFrame {
	return morph.StyleFrame{
		FontSize:      self.metrics.HeaderFontSize,
		LetterSpacing: self.metrics.HeaderSpacing,
		Top:           self.wordmarkAnchor(),
		Color:         self.options.HeaderColor,
		Opacity:       0,
	}
}

func (self *Controller) wordmarkFrameAt(scroll float64) morph.StyleFrame {
	return morph.Interpolate(scroll, self.domain, self.wordmarkStart(), self.wordmarkEnd(), self.wordmarkAnchor())
}

func (self *Controller) wordmarkVisible() bool {
	return self.mounted && self.gate.Visible(self.scroll, self.suppressed)
}
