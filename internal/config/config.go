// Package config loads kwm's TOML configuration: the screen rectangle the
// layout engine lays tiles out against, the gap parameters, and the
// directories the scenario loader searches.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ScreenConfig is the rectangle the layout engine treats as the display.
type ScreenConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// LayoutConfig holds the layout engine's gap parameters. Their defaults
// mirror the wm package's built-in constants. They are loaded and saved
// with the rest of the file, but nothing passes them to a hub: the engine
// always lays out with its own fixed constants.
type LayoutConfig struct {
	OuterGap       float64 `toml:"outer_gap"`
	TabStripHeight float64 `toml:"tab_strip_height"`
}

// Config holds all kwm configuration.
type Config struct {
	Screen   ScreenConfig      `toml:"screen"`
	Layout   LayoutConfig      `toml:"layout"`
	Bindings map[string]string `toml:"bindings"` // loaded and saved only; the TUI does not read it and its keys are fixed
}

// DefaultConfig returns configuration matching the engine's built-in
// defaults (a 150x30 screen, outer_gap 1, tab_strip_height 2).
func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenConfig{Width: 150, Height: 30},
		Layout: LayoutConfig{OuterGap: 1, TabStripHeight: 2},
	}
}

// LoadConfig loads configuration from the config file, using defaults for
// missing values.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	configPath := filepath.Join(ConfigDir(), "config.toml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Screen.Width <= 0 {
		cfg.Screen.Width = 150
	}
	if cfg.Screen.Height <= 0 {
		cfg.Screen.Height = 30
	}

	return cfg, nil
}

// SaveConfig writes the config to the config file.
func SaveConfig(cfg *Config) error {
	configPath := filepath.Join(ConfigDir(), "config.toml")

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// DataDir returns the data directory kwm stores bundled/installed
// scenarios under.
func DataDir() string {
	if dir := os.Getenv("KWM_DATA_DIR"); dir != "" {
		return dir
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "kwm")
}

// ConfigDir returns the config directory for kwm's settings and scenarios.
func ConfigDir() string {
	if dir := os.Getenv("KWM_CONFIG_DIR"); dir != "" {
		return dir
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "kwm")
}
