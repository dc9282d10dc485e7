// Package logging builds the structured loggers used by the entry points.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroidy/internal/config"
)

// LevelEnv selects the minimum log level: debug, info, warn, error.
const LevelEnv = "ASTEROIDY_LOG_LEVEL"

// New returns a logger writing to w with the level taken from LevelEnv.
// An unknown level falls back to info.
func New(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           levelFromEnv(),
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

// NewFile returns a logger appending to path, for frontends that own the
// terminal. The returned close function must be called on exit. An empty
// path discards all output.
func NewFile(path, prefix string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, prefix), f.Close, nil
}

func levelFromEnv() log.Level {
	raw := strings.TrimSpace(config.GetEnv(LevelEnv, "info"))
	level, err := log.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return log.InfoLevel
	}
	return level
}
