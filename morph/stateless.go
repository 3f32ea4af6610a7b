package morph

import "github.com/lucasb-eyer/go-colorful"

// Computes the style for the given scroll offset.
//
// Every property maps the clamped offset linearly from its start
// value to its end value. The end Top is replaced by anchorCenterY,
// which callers must read fresh on each call: the header can move
// (e.g. on resize) even mid-transition. Opacity uses the narrower
// [Domain.FadeDomain].
func Interpolate(scroll float64, domain Domain, start, end StyleFrame, anchorCenterY float64) StyleFrame {
	t := domain.Progress(scroll)
	fade := domain.FadeDomain().Progress(scroll)
	return StyleFrame{
		FontSize:      Lerp(start.FontSize, end.FontSize, t),
		LetterSpacing: Lerp(start.LetterSpacing, end.LetterSpacing, t),
		Top:           Lerp(start.Top, anchorCenterY, t),
		Color:         LerpColor(start.Color, end.Color, t),
		Opacity:       Lerp(start.Opacity, end.Opacity, fade),
	}
}

// Linear interpolation between a and b. Returns a exactly for
// t <= 0, b exactly for t >= 1 and never leaves [min(a, b), max(a, b)]
// in between, so rounding can't break monotonicity near the ends.
func Lerp(a, b, t float64) float64 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return between(a+(b-a)*t, a, b)
}

// Per-channel linear interpolation in RGB space. Same endpoint
// guarantees as [Lerp].
func LerpColor(a, b colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	blend := a.BlendRgb(b, t)
	return colorful.Color{
		R: between(blend.R, a.R, b.R),
		G: between(blend.G, a.G, b.G),
		B: between(blend.B, a.B, b.B),
	}
}

func between(value, a, b float64) float64 {
	low, high := a, b
	if low > high {
		low, high = high, low
	}
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
