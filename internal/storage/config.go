package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Storage backends selectable in Config.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ConfigEnv overrides the config file path.
const ConfigEnv = "RL_CONFIG"

// Config holds application configuration.
type Config struct {
	ReadLaterFolder string `json:"readLaterFolder"`
	Backend         string `json:"backend"`     // "json", "sqlite" or empty for auto
	FetchTitles     bool   `json:"fetchTitles"` // fetch <title> for URLs saved without one
	LogLevel        string `json:"logLevel"`
	Timeout         string `json:"timeout"` // per operation, Go duration syntax
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ReadLaterFolder: "Read Later",
		Backend:         "",
		FetchTitles:     true,
		LogLevel:        "info",
		Timeout:         "10s",
	}
}

// OperationTimeout returns the parsed Timeout, or the default when unset or invalid.
func (c Config) OperationTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(DefaultConfig().Timeout)
	return d
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	switch c.Backend {
	case "", BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
		}
	}
	return nil
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Apply defaults for emptied fields
	defaults := DefaultConfig()
	if config.ReadLaterFolder == "" {
		config.ReadLaterFolder = defaults.ReadLaterFolder
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.Timeout == "" {
		config.Timeout = defaults.Timeout
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ConfigPath returns $RL_CONFIG or the default config file path.
func ConfigPath() (string, error) {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path, nil
	}
	return DefaultConfigFilePath()
}
