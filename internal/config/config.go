// Package config loads the optional config.toml from the app's config
// directory. Missing file means defaults; a malformed file is an error the
// user should see.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/innerascend/ascend/internal/constants"
)

// Config holds user-tunable application settings.
type Config struct {
	User    UserConfig    `toml:"user"`
	Storage StorageConfig `toml:"storage"`
}

type UserConfig struct {
	// DisplayName is shown on the dashboard greeting.
	DisplayName string `toml:"display_name"`
	// Timezone is an IANA name; empty or "Local" means the system zone.
	Timezone string `toml:"timezone"`
}

type StorageConfig struct {
	// Path overrides the default database location. A postgres:// or
	// postgresql:// value selects the PostgreSQL store.
	Path string `toml:"path"`
}

// Dir returns the app config directory, respecting XDG_CONFIG_HOME.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, constants.AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + constants.AppName
	}
	return filepath.Join(home, ".config", constants.AppName)
}

// DefaultDBPath is where the SQLite store lives unless overridden by config
// or flag.
func DefaultDBPath() string {
	return filepath.Join(Dir(), constants.AppName+".db")
}

// Load reads config.toml from the config directory. A missing file yields the
// zero Config without error.
func Load() (Config, error) {
	return LoadFrom(filepath.Join(Dir(), "config.toml"))
}

// LoadFrom reads a specific config file path.
func LoadFrom(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
