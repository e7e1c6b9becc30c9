// Package config provides configuration loading, saving, and management.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"al1905d/tlvs"
)

// Config represents the daemon's runtime configuration.
type Config struct {
	// SystemName identifies this AL entity in logs and the dashboard
	// (defaults to hostname if empty).
	SystemName string `toml:"system_name"`

	// ALMACAddress seeds the local identity's AL MAC address at startup, as
	// a colon-separated hex string (e.g. "02:11:22:33:44:55"). Empty means
	// main takes the MAC of the first enumerated Ethernet interface instead.
	ALMACAddress string `toml:"al_mac_address"`

	// RegistrarMACAddress seeds the local identity's registrar MAC (C1), as
	// a colon-separated hex string. Empty means unset; it carries no
	// structural meaning to the data model either way.
	RegistrarMACAddress string `toml:"registrar_mac_address"`

	// MapWholeNetwork seeds LocalIdentity.MapWholeNetwork (C1).
	MapWholeNetwork bool `toml:"map_whole_network"`

	// DiscoveryThresholdMS is the maximum millisecond gap between a link's
	// topology-discovery and bridge-discovery timestamps for the link to be
	// considered bridged (C3).
	DiscoveryThresholdMS int64 `toml:"discovery_threshold_ms"`

	// MaxAgeSeconds is how long a Device can go without an
	// UpdateNetworkDeviceInfo call before NetworkDeviceInfoNeedsUpdate
	// reports true (C4).
	MaxAgeSeconds int64 `toml:"max_age_seconds"`

	// GCMaxAgeSeconds is how long a Device can go unrefreshed before the
	// garbage collector evicts it (C5). Must exceed MaxAgeSeconds.
	GCMaxAgeSeconds int64 `toml:"gc_max_age_seconds"`

	// GCIntervalSeconds is the cadence of the periodic GC ticker started by
	// StartGC. Must be less than GCMaxAgeSeconds.
	GCIntervalSeconds int64 `toml:"gc_interval_seconds"`

	// CaptureInterface restricts the collector to a single interface name.
	// Empty means capture on every interface the platform package enumerates.
	CaptureInterface string `toml:"capture_interface"`

	// LogDirectory is where the CSV snapshot logger writes (empty = default
	// location).
	LogDirectory string `toml:"log_directory"`

	// LoggingEnabled controls whether the CSV snapshot logger runs at all.
	LoggingEnabled bool `toml:"logging_enabled"`

	// Theme is a lipgloss theme slug. It is loaded and saved, but the
	// dashboard does not read it and always renders its one built-in theme.
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SystemName:           "",
		ALMACAddress:         "",
		MapWholeNetwork:      false,
		DiscoveryThresholdMS: 120_000,
		MaxAgeSeconds:        50,
		GCMaxAgeSeconds:      90,
		GCIntervalSeconds:    30,
		CaptureInterface:     "",
		LogDirectory:         "",
		LoggingEnabled:       true,
		Theme:                "solarized-dark",
	}
}

// ParsedALMAC decodes ALMACAddress into a tlvs.MAC. ok is false when the
// field is empty or malformed.
func (c Config) ParsedALMAC() (mac tlvs.MAC, ok bool) {
	return parseMACString(c.ALMACAddress)
}

// ParsedRegistrarMAC decodes RegistrarMACAddress into a tlvs.MAC. ok is
// false when the field is empty or malformed.
func (c Config) ParsedRegistrarMAC() (mac tlvs.MAC, ok bool) {
	return parseMACString(c.RegistrarMACAddress)
}

// parseMACString decodes a colon- or hyphen-separated hex MAC string.
func parseMACString(s string) (mac tlvs.MAC, ok bool) {
	if s == "" {
		return tlvs.MAC{}, false
	}
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ':' && s[i] != '-' {
			clean = append(clean, s[i])
		}
	}
	raw, err := hex.DecodeString(string(clean))
	if err != nil || len(raw) != 6 {
		return tlvs.MAC{}, false
	}
	copy(mac[:], raw)
	return mac, true
}

// GetConfigDir returns the configuration directory path for the current
// platform.
// Linux/macOS: $XDG_CONFIG_HOME/al1905d or ~/.config/al1905d
// Windows: %APPDATA%\al1905d
func GetConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolving home directory: %w", err)
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "al1905d")
	default:
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolving home directory: %w", err)
			}
			xdgConfig = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfig, "al1905d")
	}

	return configDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration from the config file, falling back to
// DefaultConfig for anything missing or out of range.
func Load() (Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	var cfg Config
	meta, err := toml.DecodeFile(configPath, &cfg)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("decoding %s: %w", configPath, err)
	}

	defaults := DefaultConfig()
	if cfg.Theme == "" {
		cfg.Theme = defaults.Theme
	}
	// SystemName, ALMACAddress, CaptureInterface, LogDirectory empty is
	// valid (means "derive at runtime"), so no fallback for those.

	if !meta.IsDefined("map_whole_network") {
		cfg.MapWholeNetwork = defaults.MapWholeNetwork
	}
	if !meta.IsDefined("logging_enabled") {
		cfg.LoggingEnabled = defaults.LoggingEnabled
	}

	if cfg.DiscoveryThresholdMS <= 0 {
		cfg.DiscoveryThresholdMS = defaults.DiscoveryThresholdMS
	}
	if cfg.MaxAgeSeconds <= 0 {
		cfg.MaxAgeSeconds = defaults.MaxAgeSeconds
	}
	if cfg.GCMaxAgeSeconds <= 0 {
		cfg.GCMaxAgeSeconds = defaults.GCMaxAgeSeconds
	}
	if cfg.GCIntervalSeconds <= 0 {
		cfg.GCIntervalSeconds = defaults.GCIntervalSeconds
	}

	cfg.ValidateAndFix()

	return cfg, nil
}

// Save writes the configuration to the config file, creating the config
// directory if needed.
func Save(cfg Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", configDir, err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file %s: %w", configPath, err)
	}
	defer file.Close()

	lines := []string{
		"# al1905d configuration",
		"",
		"# System identity",
		"# system_name defaults to hostname if empty",
		fmt.Sprintf("system_name = %q", cfg.SystemName),
		"# al_mac_address seeds the local AL MAC (colon-separated hex); empty",
		"# means derive one from a local interface at startup",
		fmt.Sprintf("al_mac_address = %q", cfg.ALMACAddress),
		"# registrar_mac_address is stored verbatim; it has no structural",
		"# effect on the data model (spec.md GLOSSARY)",
		fmt.Sprintf("registrar_mac_address = %q", cfg.RegistrarMACAddress),
		fmt.Sprintf("map_whole_network = %t", cfg.MapWholeNetwork),
		"",
		"# Bridge detection and device freshness",
		fmt.Sprintf("discovery_threshold_ms = %d", cfg.DiscoveryThresholdMS),
		fmt.Sprintf("max_age_seconds = %d", cfg.MaxAgeSeconds),
		fmt.Sprintf("gc_max_age_seconds = %d", cfg.GCMaxAgeSeconds),
		fmt.Sprintf("gc_interval_seconds = %d", cfg.GCIntervalSeconds),
		"",
		"# Capture",
		"# capture_interface restricts the collector to one interface; empty",
		"# captures on every enumerated interface",
		fmt.Sprintf("capture_interface = %q", cfg.CaptureInterface),
		"",
		"# Logging",
		fmt.Sprintf("logging_enabled = %t", cfg.LoggingEnabled),
		fmt.Sprintf("log_directory = %q", cfg.LogDirectory),
		"",
		"# Dashboard",
		fmt.Sprintf("theme = %q", cfg.Theme),
		"",
	}

	for _, line := range lines {
		if _, err := file.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
	}

	return nil
}

// Validate checks configuration values and returns a description of any
// that are out of range, without modifying cfg.
func (c *Config) Validate() []string {
	var errors []string
	defaults := DefaultConfig()

	if c.DiscoveryThresholdMS <= 0 {
		errors = append(errors, fmt.Sprintf("discovery_threshold_ms %d out of range (must be > 0), using default %d",
			c.DiscoveryThresholdMS, defaults.DiscoveryThresholdMS))
	}
	if c.MaxAgeSeconds <= 0 {
		errors = append(errors, fmt.Sprintf("max_age_seconds %d out of range (must be > 0), using default %d",
			c.MaxAgeSeconds, defaults.MaxAgeSeconds))
	}
	if c.GCMaxAgeSeconds <= c.MaxAgeSeconds {
		gcMaxAge := defaults.GCMaxAgeSeconds
		if gcMaxAge <= c.MaxAgeSeconds {
			gcMaxAge = c.MaxAgeSeconds + (defaults.GCMaxAgeSeconds - defaults.MaxAgeSeconds)
		}
		errors = append(errors, fmt.Sprintf("gc_max_age_seconds %d must exceed max_age_seconds %d, using %d",
			c.GCMaxAgeSeconds, c.MaxAgeSeconds, gcMaxAge))
	}
	if c.GCIntervalSeconds <= 0 || c.GCIntervalSeconds >= c.GCMaxAgeSeconds {
		errors = append(errors, fmt.Sprintf("gc_interval_seconds %d must be > 0 and < gc_max_age_seconds %d, using default %d",
			c.GCIntervalSeconds, c.GCMaxAgeSeconds, defaults.GCIntervalSeconds))
	}

	return errors
}

// ValidateAndFix checks configuration values and fixes invalid ones to
// defaults, returning a list of fields that were changed. When the default
// gc_max_age_seconds would not exceed max_age_seconds, gc_max_age_seconds is
// set to max_age_seconds plus the gap between the two defaults instead.
func (c *Config) ValidateAndFix() []string {
	var fixed []string
	defaults := DefaultConfig()

	if c.DiscoveryThresholdMS <= 0 {
		fixed = append(fixed, fmt.Sprintf("discovery_threshold_ms: %d -> %d", c.DiscoveryThresholdMS, defaults.DiscoveryThresholdMS))
		c.DiscoveryThresholdMS = defaults.DiscoveryThresholdMS
	}
	if c.MaxAgeSeconds <= 0 {
		fixed = append(fixed, fmt.Sprintf("max_age_seconds: %d -> %d", c.MaxAgeSeconds, defaults.MaxAgeSeconds))
		c.MaxAgeSeconds = defaults.MaxAgeSeconds
	}
	if c.GCMaxAgeSeconds <= c.MaxAgeSeconds {
		gcMaxAge := defaults.GCMaxAgeSeconds
		if gcMaxAge <= c.MaxAgeSeconds {
			gcMaxAge = c.MaxAgeSeconds + (defaults.GCMaxAgeSeconds - defaults.MaxAgeSeconds)
		}
		fixed = append(fixed, fmt.Sprintf("gc_max_age_seconds: %d -> %d", c.GCMaxAgeSeconds, gcMaxAge))
		c.GCMaxAgeSeconds = gcMaxAge
	}
	if c.GCIntervalSeconds <= 0 || c.GCIntervalSeconds >= c.GCMaxAgeSeconds {
		fixed = append(fixed, fmt.Sprintf("gc_interval_seconds: %d -> %d", c.GCIntervalSeconds, defaults.GCIntervalSeconds))
		c.GCIntervalSeconds = defaults.GCIntervalSeconds
	}

	return fixed
}

// EnsureConfigExists creates the default config file if it doesn't exist.
func EnsureConfigExists() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	return Save(DefaultConfig())
}
