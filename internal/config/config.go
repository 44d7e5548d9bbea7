// Package config loads the server configuration.
//
// Settings come from an optional TOML file and are then overridden by
// environment variables:
//
//	IMAGE_MCP_CONFIG      path of the TOML file
//	IMAGE_MCP_LOG_LEVEL   "debug" enables debug logging
//	IMAGE_MCP_LANGUAGE    BCP 47 tag used for result labels
//
// When IMAGE_MCP_CONFIG is unset the file is looked up at
// $XDG_CONFIG_HOME/image-filter-mcp/config.toml (falling back to
// ~/.config). A missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ironsheep/image-filter-mcp/internal/geometry"
	"github.com/ironsheep/image-filter-mcp/internal/raster"
)

// Environment variables read by Load.
const (
	EnvConfig   = "IMAGE_MCP_CONFIG"
	EnvLogLevel = "IMAGE_MCP_LOG_LEVEL"
	EnvLanguage = "IMAGE_MCP_LANGUAGE"
)

const (
	appDir     = "image-filter-mcp"
	configFile = "config.toml"
)

// Threshold holds the default threshold bounds used when a tool call omits them.
type Threshold struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// Config is the server configuration.
type Config struct {
	// LogLevel is "info" or "debug".
	LogLevel string `toml:"log_level"`

	// Language selects the label language, e.g. "en", "fr", "de".
	Language string `toml:"language"`

	// Channel is the default sampling channel: "luma" or "lightness".
	Channel string `toml:"channel"`

	Threshold Threshold `toml:"threshold"`

	// Spacing is the default pixel spacing in millimetres, column then row.
	// Empty means distances are reported in pixels only.
	Spacing []float64 `toml:"spacing"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		Language:  "en",
		Channel:   string(raster.ChannelLuma),
		Threshold: Threshold{Min: 0, Max: 255},
	}
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool { return c.LogLevel == "debug" }

// Load reads the configuration file (if any) and applies environment overrides.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfig)
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = Default()
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		cfg.Language = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a TOML file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "info", "debug":
	default:
		return fmt.Errorf("invalid log_level %q (valid: info, debug)", c.LogLevel)
	}
	if _, err := raster.ParseChannel(c.Channel); err != nil {
		return fmt.Errorf("invalid channel: %w", err)
	}
	if len(c.Spacing) > 0 {
		if _, err := geometry.NewSpacing(c.Spacing); err != nil {
			return fmt.Errorf("invalid spacing: %w", err)
		}
	}
	return nil
}

// DefaultPath returns the config file location under the XDG config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appDir, configFile)
}
