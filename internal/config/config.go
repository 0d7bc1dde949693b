// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default option sets offered by the pledge form. The form never
// validates a submitted value against these; they only populate the
// choosers.
var (
	DefaultCategories = []string{"Health", "Environment", "Community", "Learning", "Finance", "Personal"}
	DefaultReminders  = []string{"Daily", "Weekly", "Monthly", "None"}
)

// Config represents the vow configuration.
type Config struct {
	Form      FormConfig      `toml:"form"`
	Storage   StorageConfig   `toml:"storage"`
	TUI       TUIConfig       `toml:"tui"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// FormConfig owns the option sets the pledge form offers.
type FormConfig struct {
	Categories []string `toml:"categories"`
	Reminders  []string `toml:"reminders"`
}

// StorageConfig selects where pledge data lives.
type StorageConfig struct {
	Path string `toml:"path"` // Empty = default data dir; a .db/.sqlite path selects SQLite
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	ShowHelp bool `toml:"show_help"`
}

// ClipboardConfig holds clipboard settings.
type ClipboardConfig struct {
	Command string `toml:"command"` // Empty = auto-detect
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Form: FormConfig{
			Categories: append([]string{}, DefaultCategories...),
			Reminders:  append([]string{}, DefaultReminders...),
		},
		Storage: StorageConfig{
			Path: "",
		},
		TUI: TUIConfig{
			ShowHelp: true,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "vow", "config.toml")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "vow")
}

// StoragePath returns the resolved storage path: the configured one,
// or a directory store inside the data directory when unset.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return filepath.Join(DataPath(), "store")
}

// LedgerPath returns the path to the reminder delivery ledger.
func LedgerPath() string {
	return filepath.Join(DataPath(), "reminders.jsonl")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	path := DataPath()
	if path == "" {
		return errors.New("unable to determine data directory")
	}
	return os.MkdirAll(path, 0755)
}
