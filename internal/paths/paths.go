package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Name used for directory and file naming.
const toolName = "lxdctl"

// Path to the directory for configuration files.
//
//	Linux:   ~/.config/lxdctl (or $XDG_CONFIG_HOME/lxdctl)
//	macOS:   ~/Library/Application Support/lxdctl
func Config() string {
	return filepath.Join(xdg.ConfigHome, toolName)
}

// Default path to the settings file.
//
//	Linux:   ~/.config/lxdctl/config.toml
//	macOS:   ~/Library/Application Support/lxdctl/config.toml
func ConfigFile() string {
	return filepath.Join(Config(), "config.toml")
}
