// Package logging builds the structured logger for a run.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"todo/internal/config"
)

// Open returns the logger for this run and a closer for its sink.
//
// When the terminal belongs to the TUI (interactive), records go to the log
// file in the config directory as JSON. Otherwise they go to stderr as text.
// --debug forces debug level; --quiet limits stderr to errors.
func Open(cfg *config.Config, interactive bool, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level := ParseLevel(cfg.Settings.LogLevel)
	if cfg.Quiet && !interactive {
		level = slog.LevelError
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	var closer io.Closer = nopCloser{}
	if interactive {
		if err := cfg.EnsureDir(); err != nil {
			return nil, nil, err
		}
		file, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, err
		}
		handler = slog.NewJSONHandler(file, opts)
		closer = file
	} else {
		handler = slog.NewTextHandler(stderr, opts)
	}

	logger := slog.New(handler).With("session", uuid.NewString())
	return logger, closer, nil
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
