// ABOUTME: Lift configuration management with backend selection.
// ABOUTME: Handles settings, coach endpoint options, and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/lift/internal/charm"
	"github.com/harperreed/lift/internal/storage"
)

// Config stores lift tool configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default, fully
	// local) or "charm" (cloud-synced via Charm KV).
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local data storage. The Badger
	// backend puts its db/ directory here. Supports ~ expansion for the
	// home directory. Defaults to ~/.local/share/lift.
	DataDir string `json:"data_dir,omitempty"`

	// Coach configures the optional AI advice endpoint. When unset (or
	// unreachable) the coach falls back to built-in deterministic advice.
	Coach CoachConfig `json:"coach,omitempty"`
}

// CoachConfig holds settings for the text-completion advice service.
type CoachConfig struct {
	// Endpoint is the completion API URL. Empty disables remote advice.
	Endpoint string `json:"endpoint,omitempty"`

	// Model names the completion model to request.
	Model string `json:"model,omitempty"`

	// APIKeyEnv names the environment variable holding the bearer token.
	// Defaults to LIFT_API_KEY.
	APIKeyEnv string `json:"api_key_env,omitempty"`

	// TimeoutSeconds bounds each completion request. Defaults to 10.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "badger"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// APIKey resolves the coach bearer token from the environment.
func (cc *CoachConfig) APIKey() string {
	env := cc.APIKeyEnv
	if env == "" {
		env = "LIFT_API_KEY"
	}
	return os.Getenv(env)
}

// Timeout returns the per-request timeout in seconds, defaulting to 10.
func (cc *CoachConfig) Timeout() int {
	if cc.TimeoutSeconds <= 0 {
		return 10
	}
	return cc.TimeoutSeconds
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	switch c.GetBackend() {
	case "badger":
		dir := filepath.Join(c.GetDataDir(), "db")
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return storage.OpenBadger(dir)
	case "charm":
		return charm.GetClient()
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lift", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
