package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/edwinsyarief/scrollfx/frame"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a configuration file whenever it changes on disk.
// Editors often save through several events (truncate, write, rename),
// so reloads wait until the file has been quiet for a short while.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	debounce frame.Debouncer
	updates  chan *Config
}

// NewWatcher creates a watcher for the given config file. The parent
// directory is watched so files that are replaced atomically keep
// being tracked.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	return &Watcher{
		path:     abs,
		watcher:  watcher,
		logger:   logger,
		debounce: frame.NewDebouncer(100 * time.Millisecond),
		updates:  make(chan *Config, 1),
	}, nil
}

// Updates returns the channel of reloaded configurations. Only the
// most recent unread configuration is kept. The channel is closed
// when Run returns.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Run watches the file until the context is cancelled. Invalid
// configurations are logged and skipped.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.updates)
	defer w.watcher.Close()

	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			w.debounce.Notify(time.Now())

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", zap.Error(err))

		case now := <-ticker.C:
			if w.debounce.Ready(now) {
				w.reload()
			}
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		w.logger.Warn("config reload skipped", zap.String("path", w.path), zap.Error(err))
		return
	}

	w.logger.Info("config reloaded", zap.String("path", w.path), zap.Int("marqueeItems", len(cfg.Marquee.Items)))
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}
