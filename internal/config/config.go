// Package config loads and persists the aurum configuration.
package config

import (
	"encoding/json"
	"os"
)

// Config holds the user-facing settings. The on-disk form is a flat JSON
// object with exactly these keys; unknown keys are ignored and missing keys
// fall back to the defaults.
type Config struct {
	// DefaultManager is the manager preselected in menus: pacman, yay, paru.
	DefaultManager string `json:"default_manager"`

	// AutoConfirm passes --noconfirm and skips confirmation prompts.
	AutoConfirm bool `json:"auto_confirm"`

	// ShowProgress enables spinners while waiting on commands.
	ShowProgress bool `json:"show_progress"`

	// BackupBeforeOperations writes an installed-package list before every
	// mutating operation.
	BackupBeforeOperations bool `json:"backup_before_operations"`

	// MaxSearchResults caps fuzzy search suggestions.
	MaxSearchResults int `json:"max_search_results"`

	// SearchCutoff is the minimum fuzzy similarity (0-1) for a suggestion.
	SearchCutoff float64 `json:"search_cutoff"`

	// ColorsEnabled toggles colored terminal output.
	ColorsEnabled bool `json:"colors_enabled"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DefaultManager:         "pacman",
		AutoConfirm:            false,
		ShowProgress:           true,
		BackupBeforeOperations: true,
		MaxSearchResults:       10,
		SearchCutoff:           0.3,
		ColorsEnabled:          true,
	}
}

// Load reads the configuration from the default path. The config is not
// safety critical: a missing or corrupt file silently yields the defaults.
func Load() *Config {
	return LoadFrom(Path())
}

// LoadFrom reads the configuration from a specific path, falling back to
// defaults for anything missing or unreadable.
func LoadFrom(path string) *Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	// Unmarshalling on top of the defaults keeps them for absent keys.
	if err := json.Unmarshal(data, cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes the configuration to the default path. The whole object is
// rewritten on every change.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ShouldUseColor returns true if colored output should be used. The
// NO_COLOR environment variable always wins.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.ColorsEnabled
}
