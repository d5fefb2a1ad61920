package config

import (
	"os"
	"path/filepath"
)

const (
	appName    = "aurum"
	configFile = "config.json"
	logFile    = "aurum.log"
	historyDB  = "history.db"
	backupsDir = "backups"
)

// Dir returns the configuration directory, respecting XDG_CONFIG_HOME.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir() //nolint:errcheck
	return filepath.Join(home, ".config", appName)
}

// CacheDir returns the cache directory, respecting XDG_CACHE_HOME. The log
// file and backups live here.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir() //nolint:errcheck
	return filepath.Join(home, ".cache", appName)
}

// DataDir returns the data directory, respecting XDG_DATA_HOME.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir() //nolint:errcheck
	return filepath.Join(home, ".local", "share", appName)
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), configFile)
}

// LogPath returns the full path to the operation log.
func LogPath() string {
	return filepath.Join(CacheDir(), logFile)
}

// BackupDir returns the directory for pre-operation package-list backups.
func BackupDir() string {
	return filepath.Join(CacheDir(), backupsDir)
}

// HistoryPath returns the full path to the history database.
func HistoryPath() string {
	return filepath.Join(DataDir(), historyDB)
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	return os.MkdirAll(Dir(), 0o755)
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0o755)
}
