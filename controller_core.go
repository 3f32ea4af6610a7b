package scrollfx

import (
	"errors"
	"fmt"
	"math"

	"github.com/edwinsyarief/scrollfx/frame"
	"github.com/edwinsyarief/scrollfx/internal/logging"
	"github.com/edwinsyarief/scrollfx/marquee"
	"github.com/edwinsyarief/scrollfx/measure"
	"github.com/edwinsyarief/scrollfx/metrics"
	"github.com/edwinsyarief/scrollfx/morph"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"go.uber.org/zap"
)

// Hosts the wordmark and the marquee on top of a [Game]. Implements
// [ebiten.Game] through [Controller.Run](), but it can also be driven
// manually by notifying viewport and scroll signals directly.
//
// Controllers are not safe for concurrent use. All methods must be
// called from the same goroutine (Ebitengine's update goroutine when
// using [Controller.Run]()).
type Controller struct {
	// core state
	options          Options
	game             Game
	clock            frame.Clock
	logger           *zap.Logger
	loggerBase       *zap.Logger
	layoutHasChanged bool
	inDraw           bool
	scale            float64

	// viewport
	viewportWidth  float64
	viewportHeight float64
	metrics        metrics.Metrics

	// wordmark
	gate           morph.Gate
	domain         morph.Domain
	mounted        bool
	initialTop     float64
	scroll         float64
	suppressed     bool
	anchorCenterY  float64
	anchorMeasured bool
	wheelScrolling bool

	// marquee
	scroller       *marquee.Scroller
	measurer       marquee.Measurer
	textMeasurer   *measure.TextMeasurer // nil when a custom measurer is used
	marqueeWanted  bool
	marqueeSpacing float64 // em

	// drawing
	faceSource   *text.GoTextFaceSource
	wordmarkFace *text.GoTextFace
	marqueeFace  *text.GoTextFace

	// ticks
	currentTick uint64
}

// Creates a new controller. The wordmark is not mounted and the
// marquee is not shown until the first viewport notification.
func New(options Options) (*Controller, error) {
	if err := validateOptions(options); err != nil {
		return nil, err
	}

	source, err := measure.DefaultSource()
	if err != nil {
		return nil, err
	}

	ctrl := &Controller{
		options:       options,
		clock:         options.Clock,
		scale:         1.0,
		gate:          morph.Gate{Threshold: options.Threshold, Band: options.Band},
		domain:        morph.Until(options.Threshold),
		marqueeWanted: true,
		faceSource:    source,
		wordmarkFace:  &text.GoTextFace{Source: source},
		marqueeFace:   &text.GoTextFace{Source: source},
	}
	if ctrl.clock == nil {
		ctrl.clock = defaultClock
	}

	measurer := options.Measurer
	if measurer == nil {
		ctrl.textMeasurer = measure.NewTextMeasurer(
			source,
			options.MarqueeFontSizes[metrics.Desktop],
			options.MarqueeLetterSpacings[metrics.Desktop],
		)
		ctrl.textMeasurer.SetUppercase(options.MarqueeUppercase)
		measurer = ctrl.textMeasurer
	}
	ctrl.measurer = measurer
	ctrl.scroller = marquee.NewScroller(options.Marquee, measurer, options.MarqueeItems)
	ctrl.syncLogger()
	return ctrl, nil
}

func validateOptions(options Options) error {
	var errs []error
	if options.Label == "" {
		errs = append(errs, errors.New("label can't be empty"))
	}
	if !(options.Threshold > 0) || math.IsInf(options.Threshold, 0) {
		errs = append(errs, fmt.Errorf("threshold must be positive and finite, got %v", options.Threshold))
	}
	if options.Band < 0 {
		errs = append(errs, fmt.Errorf("band can't be negative, got %v", options.Band))
	}
	if err := options.Marquee.Validate(); err != nil {
		errs = append(errs, err)
	}
	for _, gap := range options.MarqueeGaps {
		if !(gap >= 0) || math.IsInf(gap, 0) {
			errs = append(errs, fmt.Errorf("marquee gaps must be finite and non-negative, got %v", gap))
		}
	}
	for _, spacing := range options.MarqueeLetterSpacings {
		if math.IsNaN(spacing) || math.IsInf(spacing, 0) {
			errs = append(errs, fmt.Errorf("marquee letter spacings must be finite, got %v", spacing))
		}
	}
	return errors.Join(errs...)
}

// Picks up loggers replaced through [SetLogger]() after creation.
func (self *Controller) syncLogger() {
	base := logging.Get()
	if base == self.loggerBase {
		return
	}
	self.loggerBase = base
	self.logger = base.Named("scrollfx")
	self.scroller.SetLogger(base.Named("marquee"))
}

func (self *Controller) log() *zap.Logger {
	self.syncLogger()
	return self.logger
}

// --- ebiten.Game implementation ---

func (self *Controller) Update() error {
	self.syncLogger()
	self.currentTick += 1
	if self.wheelScrolling {
		_, dy := ebiten.Wheel()
		if dy != 0 {
			self.notifyScroll(max(self.scroll-dy*self.options.WheelStep, 0))
		}
	}

	err := self.game.Update()
	if err != nil {
		return err
	}
	self.marqueeStep()
	self.layoutHasChanged = false
	return nil
}

func (self *Controller) Draw(screen *ebiten.Image) {
	self.inDraw = true
	self.game.Draw(screen)
	self.inDraw = false
}

func (self *Controller) Layout(logicWinWidth, logicWinHeight int) (int, int) {
	scale := 1.0
	if monitor := ebiten.Monitor(); monitor != nil {
		scale = monitor.DeviceScaleFactor()
	}
	if !(scale > 0) {
		scale = 1.0
	}

	width, height := float64(logicWinWidth), float64(logicWinHeight)
	if width != self.viewportWidth || height != self.viewportHeight || !self.mounted {
		self.layoutHasChanged = true
		self.notifyViewport(width, height)
	}
	if scale != self.scale {
		self.layoutHasChanged = true
		self.scale = scale
	}
	return int(math.Ceil(width * scale)), int(math.Ceil(height * scale))
}

// --- run ---

func (self *Controller) run(game Game) error {
	if game == nil {
		panic("can't run a nil game")
	}
	self.game = game
	return ebiten.RunGame(self)
}

// --- viewport ---

func (self *Controller) notifyViewport(width, height float64) {
	if self.inDraw {
		panic("can't notify viewport during draw stage")
	}
	if !(width >= 0) || !(height >= 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		panic("viewport size must be finite and non-negative")
	}

	self.syncLogger()
	prevClass := self.metrics.Class
	self.viewportWidth, self.viewportHeight = width, height
	self.metrics = self.options.Profile.Compute(width, self.options.Label, self.options.TargetFraction)

	firstViewport := !self.mounted
	if firstViewport {
		self.mount()
	}
	if firstViewport || self.metrics.Class != prevClass {
		self.applyMarqueeClass()
	}
	self.marqueeObserveViewport()
}

func (self *Controller) mount() {
	self.mounted = true
	self.initialTop = self.viewportHeight * self.options.InitialTopFraction
	self.log().Debug(
		"wordmark mounted",
		zap.Float64("viewportWidth", self.viewportWidth),
		zap.Float64("viewportHeight", self.viewportHeight),
		zap.Float64("initialTop", self.initialTop),
		zap.Stringer("class", self.metrics.Class),
	)
}

func (self *Controller) setSuppressed(suppressed bool) {
	if self.inDraw {
		panic("can't change suppression during draw stage")
	}
	if suppressed == self.suppressed {
		return
	}
	self.suppressed = suppressed
	self.log().Debug("suppression changed", zap.Bool("suppressed", suppressed))
	self.marqueeSyncVisibility()
}
