// Package paths provides XDG-compliant path resolution for hookcfg.
//
// Resolution order:
// 1. HOOKCFG_HOME (portable root) → $HOOKCFG_HOME/{state,cache}
// 2. XDG env vars → $XDG_*_HOME/hookcfg
// 3. Platform defaults → ~/.local/state/hookcfg, ~/.cache/hookcfg
package paths

import (
	"os"
	"path/filepath"
)

const appName = "hookcfg"

// getStateHome returns the base state home directory.
func getStateHome() string {
	if home := os.Getenv("HOOKCFG_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return filepath.Join(xdgStateHome, appName)
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state", appName)
	}
	return ""
}

// getCacheHome returns the base cache home directory.
func getCacheHome() string {
	if home := os.Getenv("HOOKCFG_HOME"); home != "" {
		return filepath.Join(home, "cache")
	}
	if xdgCacheHome := os.Getenv("XDG_CACHE_HOME"); xdgCacheHome != "" {
		return filepath.Join(xdgCacheHome, appName)
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".cache", appName)
	}
	return ""
}

// StateDir returns the hookcfg state directory.
// Used for log files.
func StateDir() string {
	return getStateHome()
}

// CacheDir returns the hookcfg cache directory.
// Used for regenerable data.
func CacheDir() string {
	return getCacheHome()
}

// ReposDir returns the directory holding pinned clones of hook repositories.
func ReposDir() string {
	base := CacheDir()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "repos")
}

// LogsDir returns the directory for file log sinks.
func LogsDir() string {
	base := StateDir()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "logs")
}
