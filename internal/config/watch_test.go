package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrollfx.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	watcher, err := NewWatcher(path, zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Run(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	cfg := DefaultConfig()
	cfg.Marquee.Items = []string{"Winter sale"}
	require.NoError(t, cfg.Save(path))

	select {
	case reloaded := <-watcher.Updates():
		require.NotNil(t, reloaded)
		assert.Equal(t, []string{"Winter sale"}, reloaded.Marquee.Items)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload received")
	}
}

func TestWatcherSkipsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrollfx.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	watcher, err := NewWatcher(path, zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Run(ctx) }()

	require.NoError(t, os.WriteFile(path, []byte("wordmark:\n  label: \"\"\n"), 0644))
	select {
	case cfg := <-watcher.Updates():
		t.Fatalf("unexpected reload: %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
	_, open := <-watcher.Updates()
	assert.False(t, open, "updates closed after Run returns")
}

func TestNewWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "scrollfx.yaml"), nil)
	assert.Error(t, err)
}
