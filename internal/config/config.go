// Package config provides configuration loading and validation for the
// search CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Config is the CLI/server configuration, loadable from a JSON file. All
// fields are optional; missing values fall back to defaults, and environment
// variables override the file.
type Config struct {
	// BackendURL is the base URL of the search backend.
	BackendURL string `json:"backend_url,omitempty"`
	// TimeoutSeconds bounds every backend call.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
	// SessionDB is the path of the local session database.
	SessionDB string `json:"session_db,omitempty"`
	// SessionID selects which persisted session the CLI operates on.
	SessionID string `json:"session_id,omitempty"`
	// Verbose enables detailed CLI output.
	Verbose bool `json:"verbose,omitempty"`
}

// Environment variable overrides.
const (
	EnvBackendURL = "RESUMARINER_BACKEND_URL"
	EnvSessionDB  = "RESUMARINER_SESSION_DB"
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		BackendURL:     "http://localhost:8000",
		TimeoutSeconds: 30,
		SessionDB:      defaultSessionDBPath(),
		SessionID:      "default",
	}
}

func defaultSessionDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "resumariner-session.db"
	}
	return filepath.Join(home, ".resumariner", "session.db")
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays environment variables onto the config.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvBackendURL); v != "" {
		c.BackendURL = v
	}
	if v := os.Getenv(EnvSessionDB); v != "" {
		c.SessionDB = v
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.BackendURL != "" {
		parsed, err := url.Parse(c.BackendURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config error: 'backend_url' is not a valid URL: %s", c.BackendURL)
		}
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BackendURL == "" {
		result.BackendURL = defaults.BackendURL
	}
	if result.SessionDB == "" {
		result.SessionDB = defaults.SessionDB
	}
	if result.SessionID == "" {
		result.SessionID = defaults.SessionID
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, CLI flags win.

	return result
}
