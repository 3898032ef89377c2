// Package config handles the XDG configuration directory and config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// SettingsFile is the settings filename inside the config directory.
	SettingsFile = "config.yaml"

	// LogFile is the log filename used when the terminal is taken by the TUI.
	LogFile = "todo.log"

	// DefaultUndoTimeout is how long a deleted task can be restored.
	DefaultUndoTimeout = 4 * time.Second
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings are the user-editable values from config.yaml.
type Settings struct {
	// UndoTimeout is how long the undo prompt stays open after a delete.
	UndoTimeout time.Duration `yaml:"undo_timeout"`

	// Theme is "light" or "dark".
	Theme string `yaml:"theme"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// DefaultSettings returns the settings used when config.yaml is absent.
func DefaultSettings() Settings {
	return Settings{
		UndoTimeout: DefaultUndoTimeout,
		Theme:       ThemeLight,
		LogLevel:    "info",
	}
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Settings are loaded from config.yaml, or defaults.
	Settings Settings
}

// New creates a Config for the default or specified config directory and
// loads config.yaml from it if present.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}

	settings, err := LoadSettings(cfg.SettingsPath())
	if err != nil {
		return nil, err
	}
	cfg.Settings = settings
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to config.yaml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// LogPath returns the path to the log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// LoadSettings reads settings from path. A missing file yields defaults;
// keys absent from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return Settings{}, fmt.Errorf("read %s: %w", SettingsFile, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}
	settings.Theme = strings.ToLower(strings.TrimSpace(settings.Theme))
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}
	return settings, nil
}

// Validate checks setting values.
func (s Settings) Validate() error {
	if s.UndoTimeout <= 0 {
		return fmt.Errorf("undo_timeout must be positive, got %s", s.UndoTimeout)
	}
	switch s.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("unknown theme: %q", s.Theme)
	}
	return nil
}

// SaveSettings writes settings to config.yaml, creating the directory.
func (c *Config) SaveSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := c.EnsureDir(); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(c.SettingsPath(), data, 0600)
}
