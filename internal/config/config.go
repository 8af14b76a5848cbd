// Package config provides configuration loading and validation for the CLI
// and server. Values come from an optional JSON file, overridden by
// environment variables, overridden by CLI flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage backend names accepted in the "storage" field.
const (
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// DefaultPort is the preview server's listen port.
const DefaultPort = 8080

// Config represents the application configuration. All fields are optional;
// missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // Preview server listen port

	// Persistence
	Storage     string `json:"storage,omitempty"`      // Backend: file, redis, or postgres
	StateDir    string `json:"state_dir,omitempty"`    // Directory for the file backend
	RedisURL    string `json:"redis_url,omitempty"`    // Redis connection URL
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Assistant
	APIKey string `json:"api_key,omitempty"` // Gemini API key
	Model  string `json:"model,omitempty"`   // Generation model override

	// Print surface
	ChromePath string `json:"chrome_path,omitempty"` // Browser binary for PDF export
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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

// FromEnv returns a Config populated from environment variables.
func FromEnv() Config {
	return Config{
		Storage:     os.Getenv("CVMAKER_STORAGE"),
		StateDir:    os.Getenv("CVMAKER_STATE_DIR"),
		RedisURL:    os.Getenv("REDIS_URL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Model:       os.Getenv("CVMAKER_MODEL"),
		ChromePath:  os.Getenv("CHROME_PATH"),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.Storage {
	case "", StorageFile, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("config error: 'storage' must be one of %s, %s, %s", StorageFile, StorageRedis, StoragePostgres)
	}

	if c.Storage == StorageRedis && c.RedisURL == "" {
		return fmt.Errorf("config error: 'redis_url' is required for the redis backend")
	}
	if c.Storage == StoragePostgres && c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' is required for the postgres backend")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for
// environment variables and CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Storage == "" {
		result.Storage = defaults.Storage
	}
	if result.StateDir == "" {
		result.StateDir = defaults.StateDir
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	return result
}

// Resolved applies the final fallbacks: file storage in the user config
// directory and the default port.
func (c *Config) Resolved() Config {
	result := *c

	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.Storage == "" {
		result.Storage = StorageFile
	}
	if result.StateDir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			result.StateDir = filepath.Join(base, "cvmaker")
		} else {
			result.StateDir = ".cvmaker"
		}
	}
	return result
}
