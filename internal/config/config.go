// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or come
// from environment variables.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	ParserURL   string `json:"parser_url,omitempty"`   // Optional external resume parser base URL
	LogJSON     bool   `json:"log_json,omitempty"`     // Emit JSON logs
	Debug       bool   `json:"debug,omitempty"`        // Enable debug logging
}

// Env variable names consulted by FromEnv.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvAPIKey      = "GEMINI_API_KEY"
	EnvParserURL   = "RESUME_PARSER_URL"
)

// Load loads configuration from a JSON file.
func Load(path string) (*Config, error) {
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

// FromEnv fills empty string fields from environment variables.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv(EnvDatabaseURL)
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv(EnvAPIKey)
	}
	if c.ParserURL == "" {
		c.ParserURL = os.Getenv(EnvParserURL)
	}
}

// Validate checks that the configuration has valid values for serving.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' (or %s) is required", EnvDatabaseURL)
	}
	if c.APIKey == "" {
		return fmt.Errorf("config error: 'api_key' (or %s) is required", EnvAPIKey)
	}
	return nil
}
