package scrollfx

import (
	"github.com/edwinsyarief/scrollfx/frame"
	"github.com/edwinsyarief/scrollfx/internal/logging"
	"github.com/edwinsyarief/scrollfx/marquee"
	"github.com/edwinsyarief/scrollfx/metrics"
	"github.com/edwinsyarief/scrollfx/morph"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
)

// --- game ---

// The game interface for scrollfx, which is the equivalent to
// [ebiten.Game] on Ebitengine but without the Layout() method.
// The viewport is managed by the [Controller] instead.
type Game interface {
	// Updates the page logic. Scroll offsets, anchor positions and
	// suppression changes are typically notified from here.
	Update() error

	// Draws the page contents. The wordmark and the marquee are
	// not drawn automatically; see [Controller.DrawWordmark]()
	// and [Controller.DrawMarquee]().
	Draw(screen *ebiten.Image)
}

// --- options ---

// Options for creating a [Controller]. Start from [DefaultOptions]()
// and override what you need.
type Options struct {
	// The wordmark text. Must not be empty.
	Label string

	// Scroll distance for the full hero to header transition, in px.
	Threshold float64

	// Extra scroll distance past the threshold during which the
	// faded wordmark is still rendered.
	Band float64

	// Fraction of the viewport width the hero wordmark should span.
	TargetFraction float64

	// Responsive font and spacing rules.
	Profile metrics.Profile

	HeroColor   colorful.Color
	HeaderColor colorful.Color

	// Fallback header height used before the first anchor is
	// notified. The fallback anchor is half of it.
	HeaderHeight float64

	// The hero top is fixed to this fraction of the viewport height
	// at mount, and never recomputed on resizes.
	InitialTopFraction float64

	// Scroll distance per mouse wheel notch, in px. Only relevant
	// if wheel scrolling is enabled.
	WheelStep float64

	Marquee      marquee.Config
	MarqueeItems []string

	// Marquee font sizes and bar heights, per device class.
	MarqueeFontSizes [2]float64
	MarqueeHeights   [2]float64

	// Extra width after each marquee item, per device class. Replaces
	// Marquee.ItemGap whenever the device class is applied.
	MarqueeGaps [2]float64

	// Marquee item letter-spacing in em, per device class.
	MarqueeLetterSpacings [2]float64

	// Draws and measures marquee items in uppercase. Custom measurers
	// receive the items unchanged.
	MarqueeUppercase bool

	MarqueeBackground colorful.Color
	MarqueeForeground colorful.Color

	// Custom marquee measurer. If nil, items are measured with the
	// default text face at the marquee font size.
	Measurer marquee.Measurer

	// Time source for marquee frames. Defaults to the system clock.
	Clock frame.Clock
}

// Returns the default storefront options.
func DefaultOptions() Options {
	var options Options
	options.Label = "VALIARIAN"
	options.Threshold = 400
	options.Band = morph.DefaultBand
	options.TargetFraction = 0.9
	options.Profile = metrics.DefaultProfile()
	options.HeroColor = colorful.Color{R: 1, G: 1, B: 1}
	options.HeaderColor = colorful.Color{}
	options.HeaderHeight = 80
	options.InitialTopFraction = 0.25
	options.WheelStep = 40
	options.Marquee = marquee.DefaultConfig()
	options.MarqueeItems = []string{
		"Flat 20% off on premium polos",
		"Free shipping on orders above ₹1999",
		"Limited edition drop – Shop now",
	}
	options.MarqueeFontSizes[metrics.Desktop] = 13
	options.MarqueeFontSizes[metrics.Mobile] = 11
	options.MarqueeHeights[metrics.Desktop] = 36
	options.MarqueeHeights[metrics.Mobile] = 32
	options.MarqueeGaps[metrics.Desktop] = 64 + 4 + 64
	options.MarqueeGaps[metrics.Mobile] = 48 + 4 + 48
	options.MarqueeLetterSpacings[metrics.Desktop] = 0.03
	options.MarqueeLetterSpacings[metrics.Mobile] = 0.02
	options.MarqueeUppercase = true
	options.MarqueeBackground = colorful.Color{}
	options.MarqueeForeground = colorful.Color{R: 1, G: 1, B: 1}
	return options
}

// Equivalent to [ebiten.RunGame](), but expecting a scrollfx [Game]
// instead of an [ebiten.Game].
func (self *Controller) Run(game Game) error {
	return self.run(game)
}

// Sets the logger shared by scrollfx and its subpackages. By
// default nothing is logged. Passing nil restores the default.
// Existing controllers pick up the new logger on their next
// update or notification.
func SetLogger(logger *zap.Logger) {
	logging.Set(logger)
}

// Returns whether a layout change has happened on the current tick.
// Layout changes happen whenever the window is resized or the device
// scale factor changes.
func (self *Controller) LayoutHasChanged() bool {
	return self.layoutHasChanged
}

// Returns the device scale factor used for the last layout.
func (self *Controller) Scale() float64 {
	return self.scale
}

// --- signals ---

// Notifies the current scroll offset, in px. Negative offsets (e.g.
// overscroll bounces) are allowed and clamp to the hero style.
//
// Must not be called during draws.
func (self *Controller) NotifyScroll(offset float64) {
	self.notifyScroll(offset)
}

// Notifies the viewport size, in px. This is done automatically
// when running through [Controller.Run](), but headless hosts and
// tests can call it directly. The first notification mounts the
// wordmark.
//
// Must not be called during draws.
func (self *Controller) NotifyViewport(width, height float64) {
	self.notifyViewport(width, height)
}

// Notifies the vertical center of the header logo anchor, in px.
// Until the first notification, half of [Options].HeaderHeight is
// used instead.
//
// Must not be called during draws.
func (self *Controller) NotifyAnchor(centerY float64) {
	self.notifyAnchor(centerY)
}

// Forgets the anchor, going back to the header height fallback.
// Commonly used when the header is unmounted.
func (self *Controller) ClearAnchor() {
	self.notifyAnchorLost()
}

// Suppresses the animated surfaces. Suppressed wordmarks are not
// visible and suppressed marquees go idle. Typical reasons are
// reduced motion preferences, open menus or other routes.
func (self *Controller) SetSuppressed(suppressed bool) {
	self.setSuppressed(suppressed)
}

// Returns whether the animated surfaces are suppressed.
func (self *Controller) IsSuppressed() bool {
	return self.suppressed
}

// Enables or disables mouse wheel scrolling. When enabled, the
// controller accumulates wheel deltas into the scroll offset before
// every [Game].Update().
func (self *Controller) SetWheelScrolling(enabled bool) {
	if self.inDraw {
		panic("can't change wheel scrolling during draw stage")
	}
	self.wheelScrolling = enabled
}

// --- ticks ---

// See [Controller.Tick]().
type AccessorTick struct{ ctrl *Controller }

// Provides access to tick functions in a structured manner.
// Use through method chaining, e.g.:
//
//	currentTick := ctrl.Tick().Now()
func (self *Controller) Tick() AccessorTick { return AccessorTick{self} }

// Returns the current tick.
func (self AccessorTick) Now() uint64 {
	return self.ctrl.currentTick
}

// Returns the updates per second. This is just [ebiten.TPS]().
func (AccessorTick) UPS() int {
	return ebiten.TPS()
}

// This is just [ebiten.SetTPS]() under the hood. Marquee speeds
// don't depend on it, as frame deltas come from the clock.
func (AccessorTick) SetUPS(updatesPerSecond int) {
	ebiten.SetTPS(updatesPerSecond)
}
