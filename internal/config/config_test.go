package config_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"todo/internal/config"
)

func writeSettings(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte(body), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}
}

func TestNew_ExplicitDirWithoutFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("Dir = %q, want %q", cfg.Dir, dir)
	}
	if cfg.Settings != config.DefaultSettings() {
		t.Errorf("expected default settings, got %+v", cfg.Settings)
	}
	if cfg.SettingsPath() != filepath.Join(dir, "config.yaml") {
		t.Errorf("unexpected settings path %q", cfg.SettingsPath())
	}
	if cfg.LogPath() != filepath.Join(dir, "todo.log") {
		t.Errorf("unexpected log path %q", cfg.LogPath())
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	if got := config.DefaultConfigDir(); got != filepath.Join(xdg, "todo") {
		t.Fatalf("DefaultConfigDir() = %q", got)
	}
}

func TestLoadSettings_Partial(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "theme: Dark\n")

	s, err := config.LoadSettings(filepath.Join(dir, config.SettingsFile))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Theme != config.ThemeDark {
		t.Errorf("Theme = %q, want dark", s.Theme)
	}
	if s.UndoTimeout != config.DefaultUndoTimeout {
		t.Errorf("UndoTimeout = %s, want default", s.UndoTimeout)
	}
}

func TestLoadSettings_Full(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "undo_timeout: 10s\ntheme: light\nlog_level: debug\n")

	s, err := config.LoadSettings(filepath.Join(dir, config.SettingsFile))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	want := config.Settings{UndoTimeout: 10 * time.Second, Theme: "light", LogLevel: "debug"}
	if s != want {
		t.Fatalf("got %+v, want %+v", s, want)
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "theme: [", "invalid config.yaml"},
		{"bad theme", "theme: purple\n", "unknown theme"},
		{"zero timeout", "undo_timeout: 0s\n", "undo_timeout must be positive"},
		{"bad duration", "undo_timeout: soon\n", "invalid config.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeSettings(t, dir, tt.body)
			_, err := config.LoadSettings(filepath.Join(dir, config.SettingsFile))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	cfg := &config.Config{Dir: filepath.Join(t.TempDir(), "nested")}
	want := config.Settings{UndoTimeout: 7 * time.Second, Theme: config.ThemeDark, LogLevel: "warn"}

	if err := cfg.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := config.LoadSettings(cfg.SettingsPath())
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestWatcher_ReloadsSettings(t *testing.T) {
	dir := t.TempDir()
	writeSettings(t, dir, "theme: light\n")
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w := config.NewWatcher(cfg, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("start watcher: %v", err)
	}

	// Retry the write until the watcher reports it; notification readiness
	// varies by platform.
	deadline := time.After(3 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	writeSettings(t, dir, "theme: dark\n")

	for {
		select {
		case ev := <-w.Events():
			// A reload can race a half-written file; wait for the final state.
			if ev.Err != nil || ev.Settings.Theme != config.ThemeDark {
				continue
			}
			return
		case <-tick.C:
			writeSettings(t, dir, "theme: dark\n")
		case <-deadline:
			t.Fatal("timed out waiting for reload event")
		}
	}
}
