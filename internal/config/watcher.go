package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ReloadEvent carries settings re-read after config.yaml changed.
// Err is set when the new file could not be loaded; Settings is then zero.
type ReloadEvent struct {
	Settings Settings
	Err      error
}

// Watcher reloads config.yaml when it changes on disk.
type Watcher struct {
	cfg    *Config
	logger *slog.Logger
	events chan ReloadEvent
}

// NewWatcher creates a watcher for cfg's settings file.
func NewWatcher(cfg *Config, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		cfg:    cfg,
		logger: logger,
		events: make(chan ReloadEvent, 4),
	}
}

// Events returns the reload channel. It is closed when the watcher stops.
func (w *Watcher) Events() <-chan ReloadEvent {
	return w.events
}

// Start watches the config directory until ctx is cancelled. The directory
// is watched rather than the file so editors that replace the file on save
// are still seen.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(w.cfg.Dir); err != nil {
		fsw.Close()
		return err
	}

	target := filepath.Clean(w.cfg.SettingsPath())
	go func() {
		defer fsw.Close()
		defer close(w.events)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				settings, err := LoadSettings(target)
				if err != nil {
					w.logger.Warn("config reload failed", "path", ev.Name, "error", err)
				} else {
					w.logger.Info("config reloaded", "path", ev.Name, "op", ev.Op.String())
				}
				select {
				case w.events <- ReloadEvent{Settings: settings, Err: err}:
				default:
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				w.logger.Error("config watcher error", "error", err)
			}
		}
	}()
	return nil
}
