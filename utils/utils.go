package utils

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

// Alias for image.Rectangle.
type Rectangle = image.Rectangle

// Syntax sugar for [ebiten.Image.SubImage]() passing explicit
// coordinates instead of [image.Rectangle] and returning [*ebiten.Image]
// instead of [image.Image].
func SubImage(source *ebiten.Image, minX, minY, maxX, maxY int) *ebiten.Image {
	return source.SubImage(Rect(minX, minY, maxX, maxY)).(*ebiten.Image)
}

// Alias for [image.Rect]().
func Rect(minX, minY, maxX, maxY int) image.Rectangle {
	return image.Rect(minX, minY, maxX, maxY)
}

// Returns [color.RGBA]{r, g, b, 255}.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Converts the given color and opacity into a premultiplied-alpha
// [color.RGBA]. Channels and opacity are clamped to [0, 1].
func Faded(clr colorful.Color, opacity float64) color.RGBA {
	if !(opacity > 0) {
		return color.RGBA{}
	}
	opacity = min(opacity, 1.0)
	c := clr.Clamped()
	return color.RGBA{
		R: uint8(c.R*opacity*255.0 + 0.5),
		G: uint8(c.G*opacity*255.0 + 0.5),
		B: uint8(c.B*opacity*255.0 + 0.5),
		A: uint8(opacity*255.0 + 0.5),
	}
}

// Fills the given area with alpha blending. Unlike [ebiten.Image.Fill](),
// coordinates can be fractional and are not clipped to the target
// bounds origin.
func FillRect(target *ebiten.Image, minX, minY, maxX, maxY float64, fillColor color.Color) {
	if maxX <= minX || maxY <= minY {
		return
	}
	vector.DrawFilledRect(
		target, float32(minX), float32(minY),
		float32(maxX-minX), float32(maxY-minY),
		fillColor, false,
	)
}

// Fills an anti-aliased circle.
func FillCircle(target *ebiten.Image, cx, cy, radius float64, fillColor color.Color) {
	if !(radius > 0) {
		return
	}
	vector.DrawFilledCircle(target, float32(cx), float32(cy), float32(radius), fillColor, true)
}
