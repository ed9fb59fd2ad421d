//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/profiles",
			expected: filepath.Join(home, "profiles"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/deckpad/profiles/backup",
			expected: filepath.Join(home, "deckpad", "profiles", "backup"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/lib/deckpad",
			expected: "/var/lib/deckpad",
		},
		{
			name:     "relative path unchanged",
			input:    "profiles/backup",
			expected: "profiles/backup",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Error("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "deckpad", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestOverlayDefaults(t *testing.T) {
	cfg := Config{}
	if !cfg.OverlaysEnabled() {
		t.Error("OverlaysEnabled() should default to true")
	}
	if !cfg.OverlaysInQuickSelect() {
		t.Error("OverlaysInQuickSelect() should default to true")
	}
	if cfg.Overlay.AlwaysOn {
		t.Error("AlwaysOn should default to false")
	}

	off := false
	cfg.Overlay.Enabled = &off
	cfg.Overlay.InQuickSelect = &off
	if cfg.OverlaysEnabled() {
		t.Error("OverlaysEnabled() = true with explicit false")
	}
	if cfg.OverlaysInQuickSelect() {
		t.Error("OverlaysInQuickSelect() = true with explicit false")
	}
}

func TestLoad_EmptyConfig(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	if err := os.WriteFile("config.toml", []byte(""), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if len(cfg.Flags) != 4 {
		t.Errorf("Flags = %v, want the four default flags", cfg.Flags)
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	configContent := `
profiles_dir = "~/deckpad-profiles"
detect_8bitdo = true
flags = [1, 7]

[custom_actions]
"Open Stats" = "Shift+S"

[overlay]
always_on = true
`
	if err := os.WriteFile("config.toml", []byte(configContent), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.DetectEightBitDo {
		t.Error("DetectEightBitDo = false, want true")
	}

	home, _ := os.UserHomeDir()
	expectedDir := filepath.Join(home, "deckpad-profiles")
	if cfg.ProfilesDir != expectedDir {
		t.Errorf("ProfilesDir = %q, want %q", cfg.ProfilesDir, expectedDir)
	}

	if len(cfg.Flags) != 2 || cfg.Flags[0] != 1 || cfg.Flags[1] != 7 {
		t.Errorf("Flags = %v, want [1 7]", cfg.Flags)
	}

	if got := cfg.CustomActions["Open Stats"]; got != "Shift+S" {
		t.Errorf("CustomActions[Open Stats] = %q, want %q", got, "Shift+S")
	}

	if !cfg.Overlay.AlwaysOn {
		t.Error("Overlay.AlwaysOn = false, want true")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	off := false
	cfg := Config{
		DetectEightBitDo: true,
		Flags:            []int{1, 7},
		CustomActions:    map[string]string{"Open Stats": "Shift+S"},
		Overlay: OverlayConfig{
			Enabled:  &off,
			AlwaysOn: true,
		},
	}

	if err := cfg.Save("config.toml"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() error = %v", err)
	}

	if !loaded.DetectEightBitDo {
		t.Error("DetectEightBitDo lost in round trip")
	}
	if len(loaded.Flags) != 2 || loaded.Flags[0] != 1 || loaded.Flags[1] != 7 {
		t.Errorf("Flags = %v, want [1 7]", loaded.Flags)
	}
	if got := loaded.CustomActions["Open Stats"]; got != "Shift+S" {
		t.Errorf("CustomActions[Open Stats] = %q, want %q", got, "Shift+S")
	}
	if loaded.OverlaysEnabled() {
		t.Error("overlay enabled = true after saving explicit false")
	}
	if !loaded.Overlay.AlwaysOn {
		t.Error("Overlay.AlwaysOn lost in round trip")
	}
	// Unset pointer booleans are written with defaults applied.
	if !loaded.OverlaysInQuickSelect() {
		t.Error("OverlaysInQuickSelect() = false, want default true")
	}
}

func TestSave_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deckpad", "config.toml")
	cfg := Config{Flags: []int{1}}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	if err := os.WriteFile("config.toml", []byte("invalid = [[["), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	_, err = Load()
	if err == nil {
		t.Error("Load() expected error for invalid TOML, got nil")
	}
}
