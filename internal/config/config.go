// Package config provides configuration loading for bandconv.
// Supports YAML files, a .env file, and environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the conversion toolkit.
type Config struct {
	Conversion    ConversionConfig    `yaml:"conversion"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ConversionConfig holds conversion pipeline settings.
type ConversionConfig struct {
	// Workers is the number of per-band workers used inside a single
	// conversion.
	Workers int `yaml:"workers"`
	// MaxConcurrentJobs is the number of files converted in parallel in
	// batch mode.
	MaxConcurrentJobs int    `yaml:"max_concurrent_jobs"`
	Overwrite         bool   `yaml:"overwrite"`
	OutputDir         string `yaml:"output_dir"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // json or console
}

// Load reads configuration from a YAML file and applies environment
// overrides. A .env file in the working directory is honored if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Conversion: ConversionConfig{
			Workers:           4,
			MaxConcurrentJobs: 2,
			Overwrite:         false,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "console",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Conversion.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Conversion.Workers)
	}

	if c.Conversion.MaxConcurrentJobs < 1 {
		return fmt.Errorf("max_concurrent_jobs must be positive, got %d", c.Conversion.MaxConcurrentJobs)
	}

	if c.Observability.LogFormat != "json" && c.Observability.LogFormat != "console" {
		return fmt.Errorf("invalid log format: %s", c.Observability.LogFormat)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BANDCONV_WORKERS"); v != "" {
		var workers int
		if _, err := fmt.Sscanf(v, "%d", &workers); err == nil {
			cfg.Conversion.Workers = workers
		}
	}

	if v := os.Getenv("BANDCONV_MAX_JOBS"); v != "" {
		var jobs int
		if _, err := fmt.Sscanf(v, "%d", &jobs); err == nil {
			cfg.Conversion.MaxConcurrentJobs = jobs
		}
	}

	if v := os.Getenv("BANDCONV_OUTPUT_DIR"); v != "" {
		cfg.Conversion.OutputDir = v
	}

	if v := os.Getenv("BANDCONV_OVERWRITE"); v == "true" {
		cfg.Conversion.Overwrite = true
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}
