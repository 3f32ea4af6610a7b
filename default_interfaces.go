package scrollfx

import (
	"github.com/edwinsyarief/scrollfx/frame"
	"github.com/edwinsyarief/scrollfx/marquee"
	"github.com/edwinsyarief/scrollfx/measure"
)

var defaultClock frame.Clock = frame.SystemClock{}

var _ marquee.Measurer = (*measure.TextMeasurer)(nil)
