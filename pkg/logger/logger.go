// Package logger builds the slog.Logger used across sellerdash. Every
// component logs through one of these constructors so level, format, and
// the component attribute stay consistent between the server, the
// middleware chain, and the SP-API core.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a *slog.Logger writing to stderr with the given level and
// format. Level: "debug", "info", "warn"/"warning", "error" (default
// "info"). Format: "json" or "text" (default "text"). Debug level also
// enables source locations.
func New(level, format string) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter creates a *slog.Logger writing to w. Used by tests and
// anything that redirects output.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	parsed := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:     parsed,
		AddSource: parsed == slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Component derives a sub-logger tagged with a component attribute, so
// log lines from the HTTP layer, the SP-API core, and the token manager
// can be told apart in aggregated output.
func Component(l *slog.Logger, name string) *slog.Logger {
	return l.With("component", name)
}

// ParseLevel converts a level string to slog.Level. Matching is
// case-insensitive and "warning" is accepted as an alias for "warn";
// anything unrecognized falls back to LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
