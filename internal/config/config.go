package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppName names the config and state directories.
const AppName = "onestop"

// Defaults.
const (
	DefaultCatalogURL         = "https://spotifyreplicatry.onrender.com/allsongs"
	DefaultCatalogMethod      = "POST"
	DefaultCatalogTimeout     = 30 * time.Second
	DefaultUserAgent          = "onestop/1.0 (https://github.com/llehouerou/onestop)"
	DefaultVolume             = 50
	DefaultTimeUpdateInterval = 250 * time.Millisecond
	DisplayCompact            = "compact"
	DisplayExpanded           = "expanded"
)

type Config struct {
	Icons         string `koanf:"icons"` // "nerd", "unicode", or "none"
	Notifications *bool  `koanf:"notifications"`
	MPRIS         *bool  `koanf:"mpris"`
	LogFile       string `koanf:"log_file"` // empty means $XDG_STATE_HOME/onestop/onestop.log

	Catalog  CatalogConfig  `koanf:"catalog"`
	Playback PlaybackConfig `koanf:"playback"`
}

// CatalogConfig describes the song catalog endpoint.
type CatalogConfig struct {
	URL       string `koanf:"url"`
	Method    string `koanf:"method"`  // "POST" (default) or "GET"
	Timeout   string `koanf:"timeout"` // Go duration, e.g. "30s"
	UserAgent string `koanf:"user_agent"`
}

// PlaybackConfig holds playback settings.
type PlaybackConfig struct {
	Volume             *float64 `koanf:"volume"`               // initial volume 0-100 (default: 50)
	TimeUpdateInterval string   `koanf:"time_update_interval"` // Go duration (default: 250ms)
	Display            string   `koanf:"display"`              // "compact" or "expanded"
}

// Load reads the config files, later files overriding earlier ones.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}
	cfg.Catalog.URL = strings.TrimSpace(cfg.Catalog.URL)
	cfg.Catalog.Method = strings.ToUpper(strings.TrimSpace(cfg.Catalog.Method))
	cfg.Playback.Display = strings.ToLower(strings.TrimSpace(cfg.Playback.Display))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/onestop/config.toml
		filepath.Join(xdg.ConfigHome, AppName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// NotificationsEnabled reports whether desktop notifications are on (default: true).
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

// MPRISEnabled reports whether the MPRIS server is on (default: true).
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// LogPath returns the log file path, creating its directory if needed.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
			return "", err
		}
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(AppName, AppName+".log"))
}

// GetCatalogConfig returns the catalog configuration with defaults applied.
func (c *Config) GetCatalogConfig() CatalogConfig {
	cfg := c.Catalog
	if cfg.URL == "" {
		cfg.URL = DefaultCatalogURL
	}
	if cfg.Method != "GET" && cfg.Method != "POST" {
		cfg.Method = DefaultCatalogMethod
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	cfg.Timeout = parseDuration(cfg.Timeout, DefaultCatalogTimeout).String()
	return cfg
}

// CatalogTimeout returns the catalog request timeout.
func (c *Config) CatalogTimeout() time.Duration {
	return parseDuration(c.Catalog.Timeout, DefaultCatalogTimeout)
}

// InitialVolume returns the starting volume clamped to 0-100.
func (c *Config) InitialVolume() float64 {
	if c.Playback.Volume == nil || math.IsNaN(*c.Playback.Volume) {
		return DefaultVolume
	}
	return max(0, min(*c.Playback.Volume, 100))
}

// TimeUpdateInterval returns the element's time update period.
func (c *Config) TimeUpdateInterval() time.Duration {
	return parseDuration(c.Playback.TimeUpdateInterval, DefaultTimeUpdateInterval)
}

// ExpandedDisplay reports whether the transport bar starts expanded.
func (c *Config) ExpandedDisplay() bool {
	return c.Playback.Display == DisplayExpanded
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
