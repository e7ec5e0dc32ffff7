package config

import (
	"fmt"
	"io"
	"log/slog"
)

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// The empty string means DefaultLevel.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// NewLogger returns a text logger writing to w at level.
func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, configErrorf("NewLogger", err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// Logger returns the logger c.Log describes, writing to w.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	return NewLogger(c.Log.Level, w)
}
