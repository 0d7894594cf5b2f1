// Package logging configures charmbracelet/log loggers for mdbridge and
// carries them through contexts.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// prefix labels interactive log lines.
const prefix = "mdbridge"

//nolint:gochecknoglobals // process-wide logger, replaced by SetDefault
var defaultLogger atomic.Pointer[log.Logger]

// New creates a stderr logger at level ("debug", "info", "warn" or
// "error", case-insensitive). Unknown levels mean info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w at level.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{})
	logger.SetLevel(parseLevel(level))
	return logger
}

// NewInteractive creates an info logger with timestamps and a prefix, for
// messages addressed to a person at a terminal.
func NewInteractive() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
		Level:           log.InfoLevel,
	})
}

func parseLevel(level string) log.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	parsed, err := log.ParseLevel(level)
	if err != nil || parsed > log.ErrorLevel {
		return log.InfoLevel
	}
	return parsed
}

// Default returns the process-wide logger, creating an info logger on
// first use.
func Default() *log.Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	defaultLogger.CompareAndSwap(nil, New("info"))
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel changes the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
