// Package logging holds the logger shared by scrollfx and its
// subpackages. The default logger discards everything.
package logging

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// Set replaces the shared logger. Passing nil restores the silent
// default. Safe for concurrent use.
func Set(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	loggerPtr.Store(logger)
}

// Get returns the shared logger. Safe for concurrent use.
func Get() *zap.Logger {
	return loggerPtr.Load()
}

// Named returns a named child of the shared logger.
func Named(name string) *zap.Logger {
	return Get().Named(name)
}

// New builds a logger for the given level name (debug, info, warn,
// error). Development loggers use the console encoder.
func New(level string, development bool) (*zap.Logger, error) {
	var parsed zapcore.Level
	if err := parsed.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(parsed)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
