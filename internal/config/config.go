// Package config loads application configuration from an optional YAML file
// with environment variable expansion.
package config

import (
	"errors"
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Upload  UploadConfig  `yaml:"upload"`
	Context ContextConfig `yaml:"context"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Address returns the HTTP listen address.
func (c ServerConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// UploadConfig bounds accepted tracker files.
type UploadConfig struct {
	MaxBytes int64 `yaml:"max_bytes"`
}

// ContextConfig bounds the data slice embedded in model prompts.
type ContextConfig struct {
	BudgetChars int `yaml:"budget_chars"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server:  ServerConfig{Port: 8501},
		Upload:  UploadConfig{MaxBytes: 16 << 20},
		Context: ContextConfig{BudgetChars: 6000},
	}
}

// Load reads configuration from a YAML file, expanding ${VAR} references
// from the environment. A missing file (or empty path) yields defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(&c.Server,
		validation.Field(&c.Server.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	); err != nil {
		return err
	}
	if err := validation.ValidateStruct(&c.Upload,
		validation.Field(&c.Upload.MaxBytes, validation.Required, validation.Min(int64(1))),
	); err != nil {
		return err
	}
	return validation.ValidateStruct(&c.Context,
		validation.Field(&c.Context.BudgetChars, validation.Required, validation.Min(200)),
	)
}
