package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Screen.Width != 150 {
		t.Errorf("Screen.Width = %v, want 150", cfg.Screen.Width)
	}
	if cfg.Screen.Height != 30 {
		t.Errorf("Screen.Height = %v, want 30", cfg.Screen.Height)
	}
	if cfg.Layout.OuterGap != 1 {
		t.Errorf("Layout.OuterGap = %v, want 1", cfg.Layout.OuterGap)
	}
}

func TestConfigDir(t *testing.T) {
	os.Unsetenv("KWM_CONFIG_DIR")
	os.Unsetenv("XDG_CONFIG_HOME")

	dir := ConfigDir()

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", "kwm")
	if dir != expected {
		t.Errorf("ConfigDir() = %q, want %q", dir, expected)
	}
}

func TestConfigDirWithEnv(t *testing.T) {
	os.Setenv("KWM_CONFIG_DIR", "/custom/config")
	defer os.Unsetenv("KWM_CONFIG_DIR")

	dir := ConfigDir()
	if dir != "/custom/config" {
		t.Errorf("ConfigDir() = %q, want %q", dir, "/custom/config")
	}
}

func TestConfigDirWithXDG(t *testing.T) {
	os.Unsetenv("KWM_CONFIG_DIR")
	os.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	defer os.Unsetenv("XDG_CONFIG_HOME")

	dir := ConfigDir()
	if dir != "/xdg/config/kwm" {
		t.Errorf("ConfigDir() = %q, want %q", dir, "/xdg/config/kwm")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := `
[screen]
width = 200
height = 50
`
	os.WriteFile(configPath, []byte(content), 0644)

	os.Setenv("KWM_CONFIG_DIR", dir)
	defer os.Unsetenv("KWM_CONFIG_DIR")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Screen.Width != 200 || cfg.Screen.Height != 50 {
		t.Errorf("Screen = %+v, want {200 50}", cfg.Screen)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	os.Setenv("KWM_CONFIG_DIR", dir)
	defer os.Unsetenv("KWM_CONFIG_DIR")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Screen.Width != 150 {
		t.Errorf("Screen.Width = %v, want 150 (default)", cfg.Screen.Width)
	}
}
