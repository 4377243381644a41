// Package config loads service configuration from an optional YAML file,
// a .env file, and environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mizan-labs/mizan/internal/finance"
)

// Config is the resolved service configuration.
type Config struct {
	Port            string        `yaml:"port"`
	GeminiModel     string        `yaml:"gemini_model"`
	MaxInputLength  int           `yaml:"max_input_length"`
	DefaultStandard string        `yaml:"default_standard"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	Debug           bool          `yaml:"debug"`
}

// Defaults mirrors the shipped policy: the classifier default is FAS 32 and
// input text is capped at 2000 characters.
func Defaults() Config {
	return Config{
		Port:            "8080",
		GeminiModel:     "gemini-2.5-flash",
		MaxInputLength:  2000,
		DefaultStandard: string(finance.FAS32),
		CacheTTL:        time.Hour,
	}
}

// Load resolves the configuration. A .env file in the working directory is
// loaded if present; yamlPath (when non-empty) must exist and parse;
// environment variables override everything.
func Load(yamlPath string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", yamlPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", yamlPath, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.GeminiModel = v
	}
	if v := os.Getenv("MAX_INPUT_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid MAX_INPUT_LENGTH %q: %w", v, err)
		}
		c.MaxInputLength = n
	}
	if v := os.Getenv("DEFAULT_STANDARD"); v != "" {
		c.DefaultStandard = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid CACHE_TTL %q: %w", v, err)
		}
		c.CacheTTL = d
	}
	if v := os.Getenv("DEBUG"); v != "" {
		c.Debug = v == "true" || v == "1"
	}
	return nil
}

func (c *Config) validate() error {
	if _, ok := finance.Lookup(finance.Standard(c.DefaultStandard)); !ok {
		return fmt.Errorf("config: unknown default standard %q", c.DefaultStandard)
	}
	if c.MaxInputLength <= 0 {
		return fmt.Errorf("config: max input length must be positive, got %d", c.MaxInputLength)
	}
	return nil
}

// Standard returns the configured default standard as a typed value. Load
// has already validated it.
func (c *Config) Standard() finance.Standard {
	return finance.Standard(c.DefaultStandard)
}
