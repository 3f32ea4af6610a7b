package morph

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{R: 0, G: 0, B: 0}
)

func heroFrame() StyleFrame {
	return StyleFrame{FontSize: 140, LetterSpacing: 0.65, Top: 180, Color: white, Opacity: 1}
}

func headerFrame(anchor float64) StyleFrame {
	return StyleFrame{FontSize: 30, LetterSpacing: 0.15, Top: anchor, Color: black, Opacity: 0}
}

func TestInterpolate_BoundaryExactness(t *testing.T) {
	domain := Until(400)
	start, end := heroFrame(), headerFrame(40)

	if diff := cmp.Diff(start, Interpolate(domain.Start, domain, start, end, 40)); diff != "" {
		t.Errorf("start frame mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(end, Interpolate(domain.End, domain, start, end, 40)); diff != "" {
		t.Errorf("end frame mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpolate_Clamps(t *testing.T) {
	domain := Until(400)
	start, end := heroFrame(), headerFrame(40)

	atStart := Interpolate(domain.Start, domain, start, end, 40)
	atEnd := Interpolate(domain.End, domain, start, end, 40)
	for _, offset := range []float64{-1, -250, -1e9, math.Inf(-1)} {
		assert.Equal(t, atStart, Interpolate(offset, domain, start, end, 40), "offset %v", offset)
	}
	for _, offset := range []float64{400.0001, 450, 1e9, math.Inf(1)} {
		assert.Equal(t, atEnd, Interpolate(offset, domain, start, end, 40), "offset %v", offset)
	}
}

func TestInterpolate_Midpoint(t *testing.T) {
	domain := Until(400)
	start, end := heroFrame(), headerFrame(40)

	frame := Interpolate(200, domain, start, end, 40)
	assert.Equal(t, 85.0, frame.FontSize)
	assert.InDelta(t, 0.4, frame.LetterSpacing, 1e-12)
	assert.Equal(t, 110.0, frame.Top)
	assert.Equal(t, colorful.Color{R: 0.5, G: 0.5, B: 0.5}, frame.Color)
	assert.Equal(t, "#808080", frame.ColorHex())
	assert.Equal(t, 1.0, frame.Opacity)
}

func TestInterpolate_OpacityFadeDomain(t *testing.T) {
	domain := Until(400)
	start, end := heroFrame(), headerFrame(40)

	assert.Equal(t, Domain{Start: 320, End: 400}, domain.FadeDomain())
	assert.Equal(t, 1.0, Interpolate(319.99, domain, start, end, 40).Opacity)
	assert.Equal(t, 1.0, Interpolate(320, domain, start, end, 40).Opacity)
	assert.InDelta(t, 0.5, Interpolate(360, domain, start, end, 40).Opacity, 1e-12)
	assert.Equal(t, 0.0, Interpolate(400, domain, start, end, 40).Opacity)
}

func TestInterpolate_Monotonic(t *testing.T) {
	domain := Until(400)
	start, end := heroFrame(), headerFrame(40)

	prev := Interpolate(-50, domain, start, end, 40)
	for offset := -49.75; offset <= 500; offset += 0.25 {
		curr := Interpolate(offset, domain, start, end, 40)
		require.LessOrEqual(t, curr.FontSize, prev.FontSize, "offset %v", offset)
		require.LessOrEqual(t, curr.LetterSpacing, prev.LetterSpacing, "offset %v", offset)
		require.LessOrEqual(t, curr.Top, prev.Top, "offset %v", offset)
		require.LessOrEqual(t, curr.Color.R, prev.Color.R, "offset %v", offset)
		require.LessOrEqual(t, curr.Opacity, prev.Opacity, "offset %v", offset)

		require.GreaterOrEqual(t, curr.FontSize, end.FontSize)
		require.GreaterOrEqual(t, curr.LetterSpacing, end.LetterSpacing)
		require.GreaterOrEqual(t, curr.Top, end.Top)
		prev = curr
	}
}

func TestInterpolate_PathIndependent(t *testing.T) {
	domain := Until(400)
	start, end := heroFrame(), headerFrame(40)

	for _, x := range []float64{0, 13.7, 200, 333.3, 399.9} {
		first := Interpolate(x, domain, start, end, 40)
		for _, y := range []float64{-30, 120, 380, 900} {
			_ = Interpolate(y, domain, start, end, 40)
			again := Interpolate(x, domain, start, end, 40)
			if diff := cmp.Diff(first, again); diff != "" {
				t.Fatalf("x=%v y=%v frame changed (-first +again):\n%s", x, y, diff)
			}
		}
	}
}

func TestInterpolate_AnchorReadFresh(t *testing.T) {
	domain := Until(400)
	start, end := heroFrame(), headerFrame(40)

	// the hero position never depends on the anchor
	assert.Equal(t, 180.0, Interpolate(0, domain, start, end, 40).Top)
	assert.Equal(t, 180.0, Interpolate(0, domain, start, end, 90).Top)

	// mid-scroll anchor moves shift the target proportionally
	a := Interpolate(300, domain, start, end, 40).Top
	b := Interpolate(300, domain, start, end, 48).Top
	assert.InDelta(t, 8*0.75, b-a, 1e-9)
	assert.Equal(t, 48.0, Interpolate(400, domain, start, end, 48).Top)
}

func TestInterpolate_DegenerateDomain(t *testing.T) {
	domain := Domain{Start: 100, End: 100}
	start, end := heroFrame(), headerFrame(40)

	assert.Equal(t, start, Interpolate(99, domain, start, end, 40))
	assert.Equal(t, end, Interpolate(100, domain, start, end, 40))
	assert.Equal(t, end, Interpolate(200, domain, start, end, 40))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.1, Lerp(0.1, 0.3, 0))
	assert.Equal(t, 0.3, Lerp(0.1, 0.3, 1))
	assert.LessOrEqual(t, Lerp(0.1, 0.3, 0.9999999999999999), 0.3)
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 5.0, Lerp(10, 0, 0.5))
}

func TestLerpColor(t *testing.T) {
	red, _ := colorful.Hex("#ff0000")
	blue, _ := colorful.Hex("#0000ff")

	assert.Equal(t, red, LerpColor(red, blue, -1))
	assert.Equal(t, blue, LerpColor(red, blue, 2))
	assert.Equal(t, "#800080", LerpColor(red, blue, 0.5).Hex())
}

func TestStyleFrame_MarginRight(t *testing.T) {
	frame := StyleFrame{LetterSpacing: 0.3}
	assert.Equal(t, -0.15, frame.MarginRight())
}

func TestGate(t *testing.T) {
	gate := NewGate(400)

	assert.True(t, gate.Visible(0, false))
	assert.True(t, gate.Visible(450, false))
	assert.False(t, gate.Visible(450.5, false))
	assert.False(t, gate.Visible(0, true))

	assert.False(t, gate.HeaderSolid(400))
	assert.True(t, gate.HeaderSolid(401))

	wide := Gate{Threshold: 400, Band: 200}
	assert.True(t, wide.Visible(600, false))
}
