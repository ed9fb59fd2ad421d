package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	ktoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	ProfilesDir      string `koanf:"profiles_dir"`  // override for the profile store location
	DetectEightBitDo bool   `koanf:"detect_8bitdo"` // 8BitDo pads impersonate Xbox pads unless enabled
	Flags            []int  `koanf:"flags"`         // flag ids offered by the Set Flag actions

	// Custom actions (name -> key sequence the host should send)
	CustomActions map[string]string `koanf:"custom_actions"`

	// Control overlay settings
	Overlay OverlayConfig `koanf:"overlay"`
}

// OverlayConfig holds the control overlay toggles.
type OverlayConfig struct {
	Enabled       *bool `koanf:"enabled"`         // show overlays at all (default: true)
	AlwaysOn      bool  `koanf:"always_on"`       // keep overlays up outside quick select
	InQuickSelect *bool `koanf:"in_quick_select"` // show overlays while quick select is open (default: true)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), ktoml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in profiles_dir
	if cfg.ProfilesDir != "" {
		cfg.ProfilesDir = expandPath(cfg.ProfilesDir)
	}

	if len(cfg.Flags) == 0 {
		cfg.Flags = []int{1, 2, 3, 4}
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/deckpad/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "deckpad", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// configDoc is the written form of the config. Tag keys mirror the koanf
// keys Load reads, so a saved file round-trips; the overlay booleans are
// written with their defaults applied.
type configDoc struct {
	ProfilesDir      string            `toml:"profiles_dir,omitempty"`
	DetectEightBitDo bool              `toml:"detect_8bitdo"`
	Flags            []int             `toml:"flags"`
	CustomActions    map[string]string `toml:"custom_actions,omitempty"`
	Overlay          overlayDoc        `toml:"overlay"`
}

type overlayDoc struct {
	Enabled       bool `toml:"enabled"`
	AlwaysOn      bool `toml:"always_on"`
	InQuickSelect bool `toml:"in_quick_select"`
}

// Save writes the configuration to path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	doc := configDoc{
		ProfilesDir:      c.ProfilesDir,
		DetectEightBitDo: c.DetectEightBitDo,
		Flags:            c.Flags,
		CustomActions:    c.CustomActions,
		Overlay: overlayDoc{
			Enabled:       c.OverlaysEnabled(),
			AlwaysOn:      c.Overlay.AlwaysOn,
			InQuickSelect: c.OverlaysInQuickSelect(),
		},
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// OverlaysEnabled returns whether control overlays should be shown at all.
func (c *Config) OverlaysEnabled() bool {
	return c.Overlay.Enabled == nil || *c.Overlay.Enabled
}

// OverlaysInQuickSelect returns whether overlays accompany the quick
// select menu.
func (c *Config) OverlaysInQuickSelect() bool {
	return c.Overlay.InQuickSelect == nil || *c.Overlay.InQuickSelect
}
