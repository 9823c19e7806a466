// Package config loads editor configuration from a TOML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is prepended to upper-cased keys for environment overrides,
// e.g. GUST_THEME or GUST_AUTOSAVE_SEC.
const EnvPrefix = "GUST_"

// Config holds every user-tunable setting.
type Config struct {
	Theme       string `toml:"theme"`
	AutosaveSec int    `toml:"autosave_sec"`
	Backup      bool   `toml:"backup"`
	Number      bool   `toml:"number"`
	Wrap        bool   `toml:"wrap"`
	Truncate    bool   `toml:"truncate"`
	LogLevel    string `toml:"log_level"`
	HistorySize int    `toml:"history_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:       "default",
		AutosaveSec: 120,
		Backup:      true,
		Number:      true,
		Wrap:        true,
		Truncate:    false,
		LogLevel:    "warn",
		HistorySize: 800,
	}
}

// DefaultPath returns the standard config file location,
// $XDG_CONFIG_HOME/gust/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gust", "config.toml"), nil
}

// InitScriptPath returns the standard Lua init script location next to the
// config file.
func InitScriptPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gust", "init.lua"), nil
}

// Load reads the config file at path on top of the defaults and then
// applies environment overrides. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides settings from GUST_* environment variables.
// Unparsable values are ignored.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvPrefix + "THEME"); ok {
		c.Theme = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookupInt("AUTOSAVE_SEC"); ok {
		c.AutosaveSec = v
	}
	if v, ok := lookupInt("HISTORY_SIZE"); ok {
		c.HistorySize = v
	}
	if v, ok := lookupBool("BACKUP"); ok {
		c.Backup = v
	}
	if v, ok := lookupBool("NUMBER"); ok {
		c.Number = v
	}
	if v, ok := lookupBool("WRAP"); ok {
		c.Wrap = v
	}
	if v, ok := lookupBool("TRUNCATE"); ok {
		c.Truncate = v
	}
}

func lookupInt(key string) (int, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func lookupBool(key string) (bool, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
