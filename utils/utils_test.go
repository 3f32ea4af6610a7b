package utils

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestFaded(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Faded(white, 1))
	assert.Equal(t, color.RGBA{128, 128, 128, 128}, Faded(white, 0.5))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Faded(white, 3))
	assert.Equal(t, color.RGBA{}, Faded(white, 0))
	assert.Equal(t, color.RGBA{}, Faded(white, -1))

	// out of gamut channels are clamped
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, Faded(colorful.Color{R: 1.4, G: -0.2}, 1))
}

func TestRGB(t *testing.T) {
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, RGB(1, 2, 3))
}

func TestRect(t *testing.T) {
	rect := Rect(1, 2, 5, 9)
	assert.Equal(t, 4, rect.Dx())
	assert.Equal(t, 7, rect.Dy())
}
