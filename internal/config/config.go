// Package config provides configuration loading and validation for the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/transform"
)

// Config represents the server configuration that can be loaded from a JSON
// file. Missing values use defaults; the Gemini API key is deliberately not
// part of the file and comes from the environment.
type Config struct {
	// BackendURL is the base URL of the resume-rendering backend.
	BackendURL string `json:"backend_url,omitempty"`

	// PayloadFormat selects the submission shape: "rich" (default) or "legacy".
	PayloadFormat string `json:"payload_format,omitempty"`

	// Template is the backend template selector (A-J).
	Template string `json:"template,omitempty"`

	// AllowImagePlaceholder enables the documented degraded mode: a failed
	// image upload substitutes a placeholder path instead of aborting.
	AllowImagePlaceholder bool `json:"allow_image_placeholder,omitempty"`

	// PreferredModels overrides the auto-fill model probing order.
	PreferredModels []string `json:"preferred_models,omitempty"`

	// ProbeLimit caps how many listed models are probed beyond the preferred ones.
	ProbeLimit int `json:"probe_limit,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		BackendURL:    "http://127.0.0.1:8000",
		PayloadFormat: transform.FormatRich,
		Template:      "A",
	}
}

// LoadConfig loads configuration from a JSON file and fills defaults.
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

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("config error: 'backend_url' is required")
	}
	if c.PayloadFormat != transform.FormatRich && c.PayloadFormat != transform.FormatLegacy {
		return fmt.Errorf("config error: 'payload_format' must be %q or %q", transform.FormatRich, transform.FormatLegacy)
	}
	if c.ProbeLimit < 0 {
		return fmt.Errorf("config error: 'probe_limit' must be non-negative")
	}
	return nil
}
