// This package derives responsive text metrics for a letter-spaced
// wordmark: the font size for the current device class and the
// letter-spacing that makes the rendered label occupy a target
// fraction of the viewport width.
//
// All functions are pure arithmetic and total over their inputs:
// degenerate values never produce NaN, infinities or negative
// spacing, they simply collapse to zero extra spacing.
package metrics

import (
	"math"
	"unicode/utf8"
)

// Average glyph advance relative to the font size for a serif
// display face (Playfair Display, Bodoni, Didot...). Tuned by eye.
const DefaultCharWidthRatio = 0.65

// Viewport widths below this value are considered mobile.
const DefaultBreakpoint = 768.0

// Returns the letter-spacing, in em units, that makes a label of
// charCount glyphs rendered at fontSize span viewportWidth*targetFraction
// pixels. The extra width is distributed evenly across the
// charCount - 1 gaps between glyphs.
//
// Returns 0 when charCount < 2, when fontSize or viewportWidth are not
// positive, or when the label is already wider than the target width.
func LetterSpacing(viewportWidth, fontSize, targetFraction float64, charCount int, charWidthRatio float64) float64 {
	if charCount < 2 || !(fontSize > 0) || !(viewportWidth > 0) {
		return 0
	}
	if math.IsInf(viewportWidth, 0) || math.IsInf(fontSize, 0) {
		return 0
	}

	targetWidth := viewportWidth * targetFraction
	baseWidth := fontSize * charWidthRatio * float64(charCount)
	spacingPx := (targetWidth - baseWidth) / float64(charCount-1)
	spacingEm := spacingPx / fontSize
	if !(spacingEm > 0) || math.IsInf(spacingEm, 0) {
		return 0
	}
	return spacingEm
}

// Returns the number of glyph slots used for spacing computations.
// Letter-spacing is also applied after the last glyph, so one extra
// slot is counted on top of the label's rune count.
func CharCount(label string) int {
	return utf8.RuneCountInString(label) + 1
}

// Returns value clamped to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
