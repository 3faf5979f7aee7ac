package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides: FOLIO_TRACKING_THRESHOLD
// sets tracking.threshold.
const EnvPrefix = "FOLIO_"

type Config struct {
	Content string `koanf:"content"` // path to a portfolio TOML file, empty for the built-in one
	Icons   string `koanf:"icons"`   // "nerd", "unicode", or "none"
	Debug   bool   `koanf:"debug"`   // write a debug log to folio.log

	Tracking TrackingConfig `koanf:"tracking"`
	Hero     HeroConfig     `koanf:"hero"`
	Gallery  GalleryConfig  `koanf:"gallery"`
	Server   ServerConfig   `koanf:"server"`
}

// TrackingConfig tunes the active-item trackers.
type TrackingConfig struct {
	DebounceMs   int     `koanf:"debounce_ms"`    // quiet period before a scroll settles (default: 50)
	MountDelayMs int     `koanf:"mount_delay_ms"` // initial correction delay (default: 100)
	Threshold    float64 `koanf:"threshold"`      // visible fraction to qualify (0.0-1.0, default: 0.5)
	Snap         *bool   `koanf:"snap"`           // snap rows to the current card after settling (default: true)
}

// HeroConfig tunes the rotating hero titles.
type HeroConfig struct {
	RotateMs int `koanf:"rotate_ms"` // time each title stays (default: 3000)
	FadeMs   int `koanf:"fade_ms"`   // time a title is hidden before switching (default: 500)
}

// GalleryConfig tunes the auto-scrolling graphics row.
type GalleryConfig struct {
	FrameMs  int   `koanf:"frame_ms"` // time per scrolled column (default: 120)
	Autoplay *bool `koanf:"autoplay"` // default: true
}

// ServerConfig configures `folio serve`.
type ServerConfig struct {
	Addr string `koanf:"addr"` // listen address (default: ":" + $PORT, or ":8080")
}

// Load reads configuration files in priority order, then environment
// overrides. An explicit path replaces the default search paths.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	configPaths := getConfigPaths()
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
		configPaths = []string{path}
	}

	for _, p := range configPaths {
		if _, err := os.Stat(p); err == nil {
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", p, err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.Content != "" {
		cfg.Content = expandPath(cfg.Content)
	}

	return cfg, nil
}

// envKey maps FOLIO_TRACKING_DEBOUNCE_MS to tracking.debounce_ms. Only the
// first underscore after the prefix separates the section from the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	switch section {
	case "tracking", "hero", "gallery", "server":
		return section + "." + rest
	}
	return key
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/folio/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "folio", "config.toml"))
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

// GetTrackingConfig returns the tracking configuration with defaults applied.
func (c *Config) GetTrackingConfig() TrackingConfig {
	cfg := c.Tracking

	if cfg.DebounceMs <= 0 {
		cfg.DebounceMs = 50
	}
	if cfg.MountDelayMs <= 0 {
		cfg.MountDelayMs = 100
	}
	if cfg.Threshold <= 0 || cfg.Threshold > 1 {
		cfg.Threshold = 0.5
	}
	if cfg.Snap == nil {
		snap := true
		cfg.Snap = &snap
	}

	return cfg
}

// Debounce returns the scroll debounce as a duration.
func (t TrackingConfig) Debounce() time.Duration {
	return time.Duration(t.DebounceMs) * time.Millisecond
}

// MountDelay returns the initial correction delay as a duration.
func (t TrackingConfig) MountDelay() time.Duration {
	return time.Duration(t.MountDelayMs) * time.Millisecond
}

// SnapEnabled reports whether rows snap to the current card.
func (t TrackingConfig) SnapEnabled() bool {
	return t.Snap == nil || *t.Snap
}

// GetHeroConfig returns the hero configuration with defaults applied.
func (c *Config) GetHeroConfig() HeroConfig {
	cfg := c.Hero
	if cfg.RotateMs <= 0 {
		cfg.RotateMs = 3000
	}
	if cfg.FadeMs <= 0 || cfg.FadeMs >= cfg.RotateMs {
		cfg.FadeMs = min(500, cfg.RotateMs/2)
	}
	return cfg
}

// Rotate returns the title rotation interval.
func (h HeroConfig) Rotate() time.Duration {
	return time.Duration(h.RotateMs) * time.Millisecond
}

// Fade returns how long a title is hidden before the next one appears.
func (h HeroConfig) Fade() time.Duration {
	return time.Duration(h.FadeMs) * time.Millisecond
}

// GetGalleryConfig returns the gallery configuration with defaults applied.
func (c *Config) GetGalleryConfig() GalleryConfig {
	cfg := c.Gallery
	if cfg.FrameMs <= 0 {
		cfg.FrameMs = 120
	}
	if cfg.Autoplay == nil {
		autoplay := true
		cfg.Autoplay = &autoplay
	}
	return cfg
}

// Frame returns the auto-scroll frame interval.
func (g GalleryConfig) Frame() time.Duration {
	return time.Duration(g.FrameMs) * time.Millisecond
}

// AutoplayEnabled reports whether the gallery scrolls by itself.
func (g GalleryConfig) AutoplayEnabled() bool {
	return g.Autoplay == nil || *g.Autoplay
}

// GetServerConfig returns the server configuration with defaults applied.
// PORT is honoured when no address is configured.
func (c *Config) GetServerConfig() ServerConfig {
	cfg := c.Server
	if cfg.Addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		cfg.Addr = ":" + port
	}
	return cfg
}
