package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger.
// It writes to Stderr because Stdout carries the animation frames.
// It standardizes common keys (e.g., "error" -> "err") and drops the time key,
// which only adds noise next to a paced animation.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ForDebug returns a debug-level stderr logger when debug is set and a no-op
// logger otherwise.
func ForDebug(debug bool) *slog.Logger {
	if debug {
		return New(slog.LevelDebug)
	}
	return NewNop()
}
