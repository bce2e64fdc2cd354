// Package config provides configuration management for the seedkit
// CLI tool.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the main configuration structure.
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values for common operations.
type DefaultSettings struct {
	EntropyBits    int    `json:"entropy_bits"`    // Default: 256
	Iterations     int    `json:"iterations"`      // Default: 2048 (BIP-39)
	WordlistPath   string `json:"wordlist_path"`   // Empty: embedded English
	StrictWordlist bool   `json:"strict_wordlist"` // Require exactly 2048 words
}

// UIConfig contains user interface settings.
type UIConfig struct {
	UseColor bool `json:"use_color"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: "1",
		Defaults: DefaultSettings{
			EntropyBits:    256,
			Iterations:     2048,
			WordlistPath:   "",
			StrictWordlist: false,
		},
		UI: UIConfig{
			UseColor: true,
		},
	}
}

// Path returns the config file location under the user config dir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "seedkit", "config.json"), nil
}

// Load reads the configuration from path, falling back to defaults if
// the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories
// as needed.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	d := c.Defaults
	if d.EntropyBits < 128 || d.EntropyBits > 256 || d.EntropyBits%32 != 0 {
		return fmt.Errorf("invalid entropy_bits %d: expected 128-256 in steps of 32", d.EntropyBits)
	}
	if d.Iterations < 1 {
		return fmt.Errorf("invalid iterations %d: must be at least 1", d.Iterations)
	}
	return nil
}
