// This package provides text-based [marquee.Measurer] implementations
// backed by Ebitengine's text/v2 faces.
package measure

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Measures items as single lines of text with the given face
// and letter-spacing (in em). The face size, spacing and case can
// be changed at any time, for example when the device class changes.
type TextMeasurer struct {
	face          *text.GoTextFace
	letterSpacing float64
	uppercase     bool
}

// Creates a text measurer for the given face source and size.
func NewTextMeasurer(source *text.GoTextFaceSource, size, letterSpacing float64) *TextMeasurer {
	if source == nil {
		panic("text measurer source can't be nil")
	}
	return &TextMeasurer{
		face:          &text.GoTextFace{Source: source, Size: size},
		letterSpacing: letterSpacing,
	}
}

// Returns the advance of the item in pixels, including the
// letter-spacing after each glyph.
func (self *TextMeasurer) Measure(item string) float64 {
	if item == "" {
		return 0
	}
	item = self.Display(item)
	width := text.Advance(item, self.face)
	runes := len([]rune(item))
	return width + float64(runes)*self.letterSpacing*self.face.Size
}

// Returns the underlying face.
func (self *TextMeasurer) Face() *text.GoTextFace {
	return self.face
}

func (self *TextMeasurer) Size() float64 {
	return self.face.Size
}

// Changes the face size. Callers are expected to trigger a new
// measurement afterwards.
func (self *TextMeasurer) SetSize(size float64) {
	self.face.Size = size
}

func (self *TextMeasurer) LetterSpacing() float64 {
	return self.letterSpacing
}

// Changes the letter-spacing, in em.
func (self *TextMeasurer) SetLetterSpacing(spacing float64) {
	self.letterSpacing = spacing
}

func (self *TextMeasurer) Uppercase() bool {
	return self.uppercase
}

// Enables or disables the uppercase transform applied to items
// before measuring them.
func (self *TextMeasurer) SetUppercase(uppercase bool) {
	self.uppercase = uppercase
}

// Returns the item as it's rendered, after the case transform.
func (self *TextMeasurer) Display(item string) string {
	if self.uppercase {
		return strings.ToUpper(item)
	}
	return item
}

var (
	defaultSourceOnce sync.Once
	defaultSource     *text.GoTextFaceSource
	defaultSourceErr  error
)

// Returns the Go Regular face source, parsed once.
func DefaultSource() (*text.GoTextFaceSource, error) {
	defaultSourceOnce.Do(func() {
		defaultSource, defaultSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if defaultSourceErr != nil {
			defaultSourceErr = fmt.Errorf("failed to load default font: %w", defaultSourceErr)
		}
	})
	return defaultSource, defaultSourceErr
}
