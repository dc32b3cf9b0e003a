package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// User-level settings for lxdctl.
//
// Command-line flags override these values; the file only supplies
// defaults.
type Config struct {
	Remote string `toml:"remote"` // Default remote host. Empty selects the local host.
	Binary string `toml:"binary"` // Path to the lxc binary. Empty resolves "lxc" through PATH.
}

// Reads the settings file at the given path.
//
// A missing file yields the zero configuration; any other read or parse
// failure is returned.
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("settings file %s: %w", path, err)
	}

	return &cfg, nil
}
