package opencode

import (
	"os"
	"path/filepath"
)

const (
	hostConfigFile = "opencode.json"
	liteConfigFile = "lite.yaml"

	// PluginName is the entry registered in the host's plugin list.
	PluginName = "opencode-lite"
	// AuthPluginName handles Antigravity authentication on the host side.
	AuthPluginName = "opencode-antigravity-auth"
)

// ConfigDir resolves the OpenCode configuration directory. An explicit
// OPENCODE_CONFIG_DIR wins, then XDG_CONFIG_HOME, then ~/.config.
func ConfigDir() string {
	if dir := os.Getenv("OPENCODE_CONFIG_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "opencode")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "opencode")
	}
	return filepath.Join(home, ".config", "opencode")
}
