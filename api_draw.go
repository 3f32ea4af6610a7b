package scrollfx

import (
	"image"
	"math"
	"strings"

	"github.com/edwinsyarief/scrollfx/marquee"
	"github.com/edwinsyarief/scrollfx/morph"
	"github.com/edwinsyarief/scrollfx/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Radius of the dot drawn between marquee items, in px.
const marqueeDotRadius = 2.0

// Draws the wordmark with the current frame, horizontally centered
// on the target. Does nothing if the wordmark is not visible.
//
// Must only be called from [Game].Draw().
func (self *Controller) DrawWordmark(target *ebiten.Image) {
	if !self.inDraw {
		panic("can't draw the wordmark outside draw stage")
	}
	if !self.wordmarkVisible() {
		return
	}
	self.drawStyled(target, self.options.Label, self.Wordmark().Frame())
}

// Draws the label with the given style frame, horizontally centered
// on the target with its vertical center at frame.Top.
func (self *Controller) DrawStyled(target *ebiten.Image, label string, frame morph.StyleFrame) {
	if !self.inDraw {
		panic("can't draw styled text outside draw stage")
	}
	self.drawStyled(target, label, frame)
}

// Draws the marquee bar with its top at the given y coordinate, in
// px. Idle marquees are not drawn.
//
// Must only be called from [Game].Draw().
func (self *Controller) DrawMarquee(target *ebiten.Image, y float64) {
	if !self.inDraw {
		panic("can't draw the marquee outside draw stage")
	}
	if self.scroller.Phase() == marquee.Idle {
		return
	}

	scale := self.scale
	bounds := target.Bounds()
	minY := float64(bounds.Min.Y) + y*scale
	maxY := minY + self.marqueeHeight()*scale
	utils.FillRect(target, float64(bounds.Min.X), minY, float64(bounds.Max.X), maxY, self.options.MarqueeBackground)

	// measuring frames show the bar without content
	if self.scroller.Phase() != marquee.Running {
		return
	}

	strip := utils.SubImage(
		target, bounds.Min.X, int(math.Floor(minY)),
		bounds.Max.X, int(math.Ceil(maxY)),
	)
	fg := utils.Faded(self.options.MarqueeForeground, 1.0)
	face := self.marqueeFace
	logicalSize := face.Size
	face.Size = logicalSize * scale
	defer func() { face.Size = logicalSize }()

	var opts text.DrawOptions
	opts.LayoutOptions.SecondaryAlign = text.AlignCenter
	opts.ColorScale.ScaleWithColor(fg)

	gap := self.scroller.Config().ItemGap * scale
	spacing := self.marqueeSpacing * face.Size
	centerY := (minY + maxY) / 2.0
	x := float64(bounds.Min.X) + self.scroller.Offset()*scale
	items := self.scroller.Items()
	copies := self.scroller.Copies(self.viewportWidth)
	for range copies {
		for _, item := range items {
			width := self.measurer.Measure(item) * scale
			if x+width+gap >= float64(bounds.Min.X) && x <= float64(bounds.Max.X) {
				label := item
				if self.options.MarqueeUppercase {
					label = strings.ToUpper(item)
				}
				drawSpaced(strip, label, face, x, centerY, spacing, &opts)
				utils.FillCircle(strip, x+width+gap/2.0, centerY, marqueeDotRadius*scale, fg)
			}
			x += width + gap
		}
	}
}

func (self *Controller) drawStyled(target *ebiten.Image, label string, frame morph.StyleFrame) {
	if label == "" || !(frame.Opacity > 0) || !(frame.FontSize > 0) {
		return
	}

	scale := self.scale
	face := self.wordmarkFace
	face.Size = frame.FontSize * scale
	spacing := frame.LetterSpacing * face.Size

	width := spacedAdvance(label, face, spacing) + frame.MarginRight()*face.Size
	bounds := target.Bounds()
	x := float64(bounds.Min.X) + (float64(bounds.Dx())-width)/2.0
	y := float64(bounds.Min.Y) + frame.Top*scale

	var opts text.DrawOptions
	opts.LayoutOptions.SecondaryAlign = text.AlignCenter
	opts.ColorScale.ScaleWithColor(utils.Faded(frame.Color, frame.Opacity))
	drawSpaced(target, label, face, x, y, spacing, &opts)
}

// Draws the label glyph by glyph starting at (x, y), adding the
// given spacing after each glyph. Only the GeoM of opts is modified.
func drawSpaced(target *ebiten.Image, label string, face text.Face, x, y, spacing float64, opts *text.DrawOptions) {
	for _, r := range label {
		glyph := string(r)
		opts.GeoM.Reset()
		opts.GeoM.Translate(x, y)
		text.Draw(target, glyph, face, opts)
		x += text.Advance(glyph, face) + spacing
	}
}

// Returns the advance of the label when drawn glyph by glyph with
// the given spacing after each glyph.
func spacedAdvance(label string, face text.Face, spacing float64) float64 {
	var width float64
	for _, r := range label {
		width += text.Advance(string(r), face) + spacing
	}
	return width
}

// Returns the logical area covered by the marquee bar if drawn at
// the given y coordinate.
func (self *Controller) MarqueeArea(y float64) image.Rectangle {
	return image.Rect(
		0, int(math.Floor(y)),
		int(math.Ceil(self.viewportWidth)), int(math.Ceil(y+self.marqueeHeight())),
	)
}
