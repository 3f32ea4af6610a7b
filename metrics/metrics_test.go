package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterSpacing_ClosedForm(t *testing.T) {
	got := LetterSpacing(1920, 140, 0.9, 10, DefaultCharWidthRatio)
	want := ((1920*0.9 - 140*0.65*10) / 9) / 140
	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 0.6492063492, got, 1e-9)
}

func TestLetterSpacing_Degenerate(t *testing.T) {
	tests := []struct {
		name      string
		viewport  float64
		fontSize  float64
		charCount int
	}{
		{"single char", 1920, 140, 1},
		{"zero chars", 1920, 140, 0},
		{"zero font", 1920, 0, 10},
		{"negative font", 1920, -12, 10},
		{"zero viewport", 0, 140, 10},
		{"nan viewport", math.NaN(), 140, 10},
		{"inf viewport", math.Inf(1), 140, 10},
		{"label wider than target", 320, 140, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LetterSpacing(tt.viewport, tt.fontSize, 0.9, tt.charCount, DefaultCharWidthRatio)
			assert.Equal(t, 0.0, got)
		})
	}
}

func TestLetterSpacing_NeverNegativeOrInfinite(t *testing.T) {
	for viewport := 1.0; viewport <= 4000; viewport += 37 {
		for fontSize := 0.5; fontSize <= 300; fontSize += 13.5 {
			for charCount := 2; charCount <= 24; charCount += 3 {
				got := LetterSpacing(viewport, fontSize, 0.9, charCount, DefaultCharWidthRatio)
				require.False(t, math.IsInf(got, 0), "viewport=%v font=%v chars=%v", viewport, fontSize, charCount)
				require.False(t, math.IsNaN(got), "viewport=%v font=%v chars=%v", viewport, fontSize, charCount)
				require.GreaterOrEqual(t, got, 0.0, "viewport=%v font=%v chars=%v", viewport, fontSize, charCount)
			}
		}
	}
}

func TestCharCount(t *testing.T) {
	assert.Equal(t, 10, CharCount("VALIARIAN"))
	assert.Equal(t, 1, CharCount(""))
	assert.Equal(t, 4, CharCount("été"))
}

func TestProfile_ClassFor(t *testing.T) {
	profile := DefaultProfile()
	assert.Equal(t, Mobile, profile.ClassFor(375))
	assert.Equal(t, Mobile, profile.ClassFor(767.9))
	assert.Equal(t, Desktop, profile.ClassFor(768))
	assert.Equal(t, Desktop, profile.ClassFor(1920))
}

func TestClass_HeroFontSizeClamps(t *testing.T) {
	profile := DefaultProfile()

	assert.InDelta(t, 140.0, profile.Desktop.HeroFontSize(1920), 1e-9)
	assert.Equal(t, 140.0, profile.Desktop.HeroFontSize(3840))
	assert.Equal(t, 96.0, profile.Desktop.HeroFontSize(800))

	assert.InDelta(t, 50.0, profile.Mobile.HeroFontSize(375), 1e-9)
	assert.Equal(t, 36.0, profile.Mobile.HeroFontSize(200))
	assert.Equal(t, 50.0, profile.Mobile.HeroFontSize(700))
	assert.Equal(t, 36.0, profile.Mobile.HeroFontSize(0))
}

func TestProfile_Compute(t *testing.T) {
	profile := DefaultProfile()

	desktop := profile.Compute(1920, "VALIARIAN", 0.9)
	assert.Equal(t, Desktop, desktop.Class)
	assert.InDelta(t, 140.0, desktop.HeroFontSize, 1e-9)
	assert.InDelta(t, LetterSpacing(1920, desktop.HeroFontSize, 0.9, 10, DefaultCharWidthRatio), desktop.HeroSpacing, 1e-12)
	assert.Equal(t, 30.0, desktop.HeaderFontSize)
	assert.Equal(t, 0.15, desktop.HeaderSpacing)

	mobile := profile.Compute(375, "VALIARIAN", 0.9)
	assert.Equal(t, Mobile, mobile.Class)
	assert.Equal(t, 20.0, mobile.HeaderFontSize)
	assert.Equal(t, 0.12, mobile.HeaderSpacing)
	assert.GreaterOrEqual(t, mobile.HeroSpacing, 0.0)
}

func TestProfile_ComputeFallsBackToDefaultRatio(t *testing.T) {
	profile := DefaultProfile()
	profile.CharWidthRatio = 0

	got := profile.Compute(1920, "VALIARIAN", 0.9)
	assert.InDelta(t, DefaultProfile().Compute(1920, "VALIARIAN", 0.9).HeroSpacing, got.HeroSpacing, 1e-12)
}

func TestDeviceClass_String(t *testing.T) {
	assert.Equal(t, "Desktop", Desktop.String())
	assert.Equal(t, "Mobile", Mobile.String())
	assert.Panics(t, func() { _ = DeviceClass(9).String() })
}
