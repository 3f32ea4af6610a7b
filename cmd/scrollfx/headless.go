package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/edwinsyarief/scrollfx/frame"
	"github.com/edwinsyarief/scrollfx/internal/config"
	"github.com/edwinsyarief/scrollfx/internal/logging"
	"github.com/edwinsyarief/scrollfx/marquee"
	"github.com/edwinsyarief/scrollfx/measure"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"
)

var (
	headlessDuration time.Duration
	headlessReport   time.Duration
	headlessWatch    bool
)

// headlessCmd animates the marquee on a frame loop without a window
var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the marquee on a background frame loop and report its state",
	Long: `Measures the configured marquee items with the default text face and
animates them on a 60Hz frame loop, printing the phase, offset and unit
width periodically. Stops on SIGINT/SIGTERM or after --duration.`,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().DurationVar(&headlessDuration, "duration", 0, "Stop after this long (0 runs until interrupted)")
	headlessCmd.Flags().DurationVar(&headlessReport, "report", 500*time.Millisecond, "Interval between state reports")
	headlessCmd.Flags().BoolVarP(&headlessWatch, "watch", "w", false, "Reload marquee items when the config file changes")
}

// latestState keeps the most recent frame published by the driver.
type latestState struct {
	mu     sync.Mutex
	state  marquee.State
	frames uint64
}

func (self *latestState) store(state marquee.State) {
	self.mu.Lock()
	self.state = state
	self.frames++
	self.mu.Unlock()
}

func (self *latestState) load() (marquee.State, uint64) {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.state, self.frames
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if !(headlessReport > 0) {
		return fmt.Errorf("report interval must be positive, got %v", headlessReport)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if headlessDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, headlessDuration)
		defer cancel()
	}

	source, err := measure.DefaultSource()
	if err != nil {
		return err
	}
	measurer := measure.NewTextMeasurer(source, cfg.Marquee.FontSize, cfg.Marquee.LetterSpacing)
	measurer.SetUppercase(cfg.Marquee.Uppercase)
	scroller := marquee.NewScroller(cfg.MarqueeConfig(), measurer, cfg.Marquee.Items)
	scroller.SetLogger(logging.Named("marquee"))

	var watcher *config.Watcher
	if headlessWatch {
		watcher, err = config.NewWatcher(configPath, logging.Named("config"))
		if err != nil {
			return err
		}
	}

	var latest latestState
	driver := marquee.NewDriver(scroller, nil, frame.DefaultInterval, latest.store)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		driver.Show(gctx)
		<-gctx.Done()
		driver.Hide()
		return nil
	})

	g.Go(func() error {
		out := cmd.OutOrStdout()
		ticker := time.NewTicker(headlessReport)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				state, frames := latest.load()
				fmt.Fprintf(out, "stopped after %d frames at offset %.2f\n", frames, state.Offset)
				return nil
			case <-ticker.C:
				state, frames := latest.load()
				fmt.Fprintf(out, "%-9s offset %9.2f  unit %8.2f  frames %d\n",
					state.Phase, state.Offset, state.UnitWidth, frames)
			}
		}
	})

	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
		g.Go(func() error {
			for reloaded := range watcher.Updates() {
				logger.Info("marquee items reloaded", zap.Strings("items", reloaded.Marquee.Items))
				driver.SetItems(reloaded.Marquee.Items)
			}
			return nil
		})
	}

	return g.Wait()
}
