package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/edwinsyarief/scrollfx"
	"github.com/edwinsyarief/scrollfx/internal/config"
	"github.com/edwinsyarief/scrollfx/internal/logging"
	"github.com/edwinsyarief/scrollfx/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchConfig bool

// runCmd opens the demo window
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window with the animated storefront header",
	Long: `Opens a resizable window hosting the wordmark and the marquee.

Controls:
  wheel, arrows, page up/down   scroll
  S                             toggle suppression
  M                             toggle the marquee
  Ctrl                          show debug info
  Esc                           quit`,
	RunE: runWindow,
}

func init() {
	runCmd.Flags().BoolVarP(&watchConfig, "watch", "w", false, "Reload marquee items when the config file changes")
}

// page is a fake storefront page scrolled by the user.
type page struct {
	ctrl          *scrollfx.Controller
	reloads       <-chan *config.Config
	headerHeight  float64
	marqueeHidden bool
	background    color.RGBA
}

func runWindow(cmd *cobra.Command, args []string) error {
	options, err := optionsFromConfig(cfg)
	if err != nil {
		return err
	}
	ctrl, err := scrollfx.New(options)
	if err != nil {
		return fmt.Errorf("failed to create controller: %w", err)
	}
	ctrl.SetWheelScrolling(true)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	game := &page{
		ctrl:         ctrl,
		headerHeight: cfg.Wordmark.HeaderHeight,
		background:   utils.RGB(0x1a, 0x1a, 0x1a),
	}

	var watchDone chan error
	if watchConfig {
		watcher, err := config.NewWatcher(configPath, logging.Named("config"))
		if err != nil {
			return err
		}
		game.reloads = watcher.Updates()
		watchDone = make(chan error, 1)
		go func() { watchDone <- watcher.Run(ctx) }()
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ctrl.Tick().SetUPS(cfg.Window.TPS)

	err = ctrl.Run(game)
	cancel()
	if watchDone != nil {
		if werr := <-watchDone; werr != nil {
			logger.Warn("config watcher stopped with error", zap.Error(werr))
		}
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (self *page) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	select {
	case reloaded, ok := <-self.reloads:
		if ok {
			self.ctrl.Marquee().SetItems(reloaded.Marquee.Items)
		}
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		self.ctrl.SetSuppressed(!self.ctrl.IsSuppressed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		self.marqueeHidden = !self.marqueeHidden
		if self.marqueeHidden {
			self.ctrl.Marquee().Hide()
		} else {
			self.ctrl.Marquee().Show()
		}
	}

	scroll := self.ctrl.Wordmark().Scroll()
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		scroll += 8
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		scroll -= 8
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		scroll += 300
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		scroll -= 300
	}
	self.ctrl.NotifyScroll(max(scroll, 0))

	// the header sits right below the marquee bar
	self.ctrl.NotifyAnchor(self.marqueeOffset() + self.headerHeight/2.0)
	return nil
}

func (self *page) marqueeOffset() float64 {
	if self.marqueeHidden || self.ctrl.IsSuppressed() {
		return 0
	}
	return self.ctrl.Marquee().Height()
}

func (self *page) Draw(screen *ebiten.Image) {
	screen.Fill(self.background)
	scale := self.ctrl.Scale()
	bounds := screen.Bounds()

	wordmark := self.ctrl.Wordmark()
	top := self.marqueeOffset()
	if wordmark.HeaderSolid() {
		utils.FillRect(
			screen, float64(bounds.Min.X), top*scale,
			float64(bounds.Max.X), (top+self.headerHeight)*scale,
			utils.RGB(0xff, 0xff, 0xff),
		)
		logo := wordmark.FrameAt(wordmark.Domain().End)
		logo.Opacity = 1
		self.ctrl.DrawStyled(screen, wordmark.Label(), logo)
	}

	self.ctrl.DrawMarquee(screen, 0)
	self.ctrl.DrawWordmark(screen)

	if ebiten.IsKeyPressed(scrollfx.Ctrl) {
		frame := wordmark.Frame()
		state := self.ctrl.Marquee().State()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"tick %d  scroll %.0f  font %.1fpx  spacing %.3fem  top %.1f  color %s  opacity %.2f\n"+
				"marquee %s  offset %.1f  unit %.1f  copies %d  suppressed %t",
			self.ctrl.Tick().Now(), wordmark.Scroll(), frame.FontSize, frame.LetterSpacing,
			frame.Top, frame.ColorHex(), frame.Opacity,
			state.Phase, state.Offset, state.UnitWidth, self.ctrl.Marquee().Copies(),
			self.ctrl.IsSuppressed(),
		), 8, bounds.Max.Y-40)
	}
}
