package measure

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMeasurer(t *testing.T, size, spacing float64) *TextMeasurer {
	t.Helper()
	source, err := DefaultSource()
	require.NoError(t, err)
	return NewTextMeasurer(source, size, spacing)
}

func TestDefaultSourceIsShared(t *testing.T) {
	a, err := DefaultSource()
	require.NoError(t, err)
	b, err := DefaultSource()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestTextMeasurer_Measure(t *testing.T) {
	measurer := newTestMeasurer(t, 13, 0)
	assert.Equal(t, 0.0, measurer.Measure(""))

	short := measurer.Measure("Free")
	long := measurer.Measure("Free shipping")
	assert.Greater(t, short, 0.0)
	assert.Greater(t, long, short)
	assert.Equal(t, text.Advance("Free shipping", measurer.Face()), long)
}

func TestTextMeasurer_LetterSpacing(t *testing.T) {
	plain := newTestMeasurer(t, 20, 0)
	spaced := newTestMeasurer(t, 20, 0.1)
	assert.Equal(t, 0.1, spaced.LetterSpacing())

	// 4 glyphs, 0.1em each at 20px
	assert.InDelta(t, plain.Measure("SALE")+8, spaced.Measure("SALE"), 1e-9)
}

func TestTextMeasurer_SetSize(t *testing.T) {
	measurer := newTestMeasurer(t, 13, 0)
	small := measurer.Measure("Limited edition drop")

	measurer.SetSize(26)
	assert.Equal(t, 26.0, measurer.Size())
	assert.InDelta(t, 2*small, measurer.Measure("Limited edition drop"), 1.0)
}

func TestNewTextMeasurer_NilSourcePanics(t *testing.T) {
	assert.Panics(t, func() { NewTextMeasurer(nil, 13, 0) })
}

func TestTextMeasurer_Uppercase(t *testing.T) {
	measurer := newTestMeasurer(t, 13, 0.02)
	lower := measurer.Measure("Free shipping")
	assert.Equal(t, "Free shipping", measurer.Display("Free shipping"))

	measurer.SetUppercase(true)
	assert.True(t, measurer.Uppercase())
	assert.Equal(t, "FREE SHIPPING", measurer.Display("Free shipping"))
	assert.Equal(t, measurer.Measure("FREE SHIPPING"), measurer.Measure("Free shipping"))
	assert.Greater(t, measurer.Measure("Free shipping"), lower)

	measurer.SetLetterSpacing(0.03)
	assert.Equal(t, 0.03, measurer.LetterSpacing())
}
