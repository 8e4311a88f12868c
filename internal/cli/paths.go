package cli

import (
	"os"
	"path/filepath"
)

// cacheDir is $XDG_CACHE_HOME/autgroup, or ~/.cache/autgroup.
func cacheDir() (string, error) { return xdgDir("XDG_CACHE_HOME", ".cache") }

// configDir is $XDG_CONFIG_HOME/autgroup, or ~/.config/autgroup.
func configDir() (string, error) { return xdgDir("XDG_CONFIG_HOME", ".config") }

// xdgDir resolves the autgroup directory under the base named by env,
// falling back to ~/<fallback> when env is unset or empty.
func xdgDir(env, fallback string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, appName), nil
}
