// This package maps a scroll offset to the visual style of a
// morphing wordmark: font size, letter-spacing, vertical position,
// color and opacity all transition linearly between a "hero" frame
// and a "header" frame as the page scrolls through a [Domain].
//
// Interpolation is stateless. The same scroll offset always produces
// the same [StyleFrame], regardless of the path taken to reach it, so
// scrolling back up retraces the exact same values. Whether the
// wordmark is drawn at all is a separate on/off decision made by a
// [Gate], layered on top of the continuous math.
package morph

import "github.com/lucasb-eyer/go-colorful"

// Scroll offset range, in pixels, over which a transition happens.
type Domain struct {
	Start float64
	End   float64
}

// Returns the [0, threshold] domain.
func Until(threshold float64) Domain {
	return Domain{Start: 0, End: threshold}
}

// Returns the value clamped to the domain.
func (self Domain) Clamp(value float64) float64 {
	if value < self.Start {
		return self.Start
	}
	if value > self.End {
		return self.End
	}
	return value
}

// Returns the normalized position of the value within the domain,
// clamped to [0, 1]. Empty or inverted domains behave like a step
// at Start.
func (self Domain) Progress(value float64) float64 {
	if !(self.End > self.Start) {
		if value < self.Start {
			return 0
		}
		return 1
	}
	if value <= self.Start {
		return 0
	}
	if value >= self.End {
		return 1
	}
	return (value - self.Start) / (self.End - self.Start)
}

// Returns the sub-domain used for opacity: the last 20% of the
// domain, so the wordmark is fully faded just as the transition
// completes.
func (self Domain) FadeDomain() Domain {
	return Domain{Start: self.Start + 0.8*(self.End-self.Start), End: self.End}
}

// The style of the wordmark at a given scroll offset.
type StyleFrame struct {
	FontSize      float64 // px
	LetterSpacing float64 // em
	Top           float64 // px
	Color         colorful.Color
	Opacity       float64 // [0, 1]
}

// Returns the color as a "#rrggbb" string.
func (self StyleFrame) ColorHex() string {
	return self.Color.Hex()
}

// Returns the right margin, in em, that compensates the spacing
// added after the last glyph so letter-spaced text stays visually
// centered.
func (self StyleFrame) MarginRight() float64 {
	return -self.LetterSpacing * 0.5
}
