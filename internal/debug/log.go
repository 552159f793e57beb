package debug

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a text logger writing to w: debug level when cfg.Enabled,
// info level otherwise. A nil w writes to stderr.
//
// Example usage:
//
//	logger := debug.NewLogger(debug.FromEnv(), nil)
//	logger.Debug("submitting policy", "url", url)
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if cfg.Enabled {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
