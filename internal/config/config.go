// Package config loads optional defaults from the user's config file.
// pathctl never writes configuration; the file is read once at startup
// and command-line flags override anything it sets.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config holds user defaults for the flag surface.
type Config struct {
	// Env is the environment variable to read when --env is not given.
	Env string `toml:"env"`
	// Pretty makes one-per-line output the default.
	Pretty bool `toml:"pretty"`
	// Color controls styled analyze output: "auto", "always", or "never".
	Color string `toml:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Env:   "PATH",
		Color: "auto",
	}
}

// Path returns the location of the config file, honoring XDG_CONFIG_HOME.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "pathctl", "config.toml")
}

// Load reads the config file if it exists, applying its values on top of
// the defaults. A missing file is not an error; a malformed one is.
func Load() (Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Env == "" {
		cfg.Env = "PATH"
	}
	switch cfg.Color {
	case "auto", "always", "never":
	case "":
		cfg.Color = "auto"
	default:
		return cfg, fmt.Errorf("config %s: color must be auto, always, or never, got %q", path, cfg.Color)
	}
	return cfg, nil
}
