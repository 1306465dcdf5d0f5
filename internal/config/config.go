// Package config loads the moneytext command line configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/govalues/decimal"
	"github.com/govalues/moneytext"
	"gopkg.in/yaml.v3"
)

// Config holds all moneytext configuration.
type Config struct {
	// Exchange rate source
	Rates RatesConfig `yaml:"rates"`

	// Conversion history
	History HistoryConfig `yaml:"history"`

	// Redis connection, used by the redis history backend
	Redis RedisConfig `yaml:"redis"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Currencies used when neither the text nor the flags name one
	Defaults DefaultsConfig `yaml:"defaults"`
}

// RatesConfig configures the exchange rate provider.
type RatesConfig struct {
	BaseURL  string            `yaml:"base_url"`
	CacheTTL time.Duration     `yaml:"cache_ttl"`
	Timeout  time.Duration     `yaml:"timeout"`
	Retries  uint64            `yaml:"retries"`
	Fallback map[string]string `yaml:"fallback"` // code -> rate against CNY
}

// HistoryConfig configures the conversion history.
type HistoryConfig struct {
	Backend string `yaml:"backend"` // sqlite, redis, memory
	Path    string `yaml:"path"`    // sqlite database, empty for the user config directory
	Key     string `yaml:"key"`
	Limit   int    `yaml:"limit"`
}

// RedisConfig configures the redis connection.
type RedisConfig struct {
	URL string `yaml:"url"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultsConfig holds the fallback currencies of the converter.
type DefaultsConfig struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Rates: RatesConfig{
			BaseURL:  "https://api.exchangerate-api.com/v4/latest",
			CacheTTL: time.Hour,
			Timeout:  10 * time.Second,
			Retries:  3,
			Fallback: map[string]string{
				"CNY": "1",
				"USD": "0.138",
				"EUR": "0.127",
				"GBP": "0.109",
				"JPY": "21.5",
				"HKD": "1.08",
				"RUB": "13.5",
			},
		},
		History: HistoryConfig{
			Backend: "sqlite",
			Key:     "conversionHistory",
			Limit:   10,
		},
		Redis: RedisConfig{
			URL: "redis://localhost:6379/0",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Defaults: DefaultsConfig{
			Source: "CNY",
			Target: "USD",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file is not an error: the defaults are used instead.
// Environment variables override values from the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("MONEYTEXT_RATES_URL"); url != "" {
		c.Rates.BaseURL = url
	}
	if url := os.Getenv("MONEYTEXT_REDIS_URL"); url != "" {
		c.Redis.URL = url
		c.History.Backend = "redis"
	}
	if level := os.Getenv("MONEYTEXT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// ValidBackends lists the supported history backends.
var ValidBackends = []string{"sqlite", "redis", "memory"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Rates.BaseURL == "" {
		return fmt.Errorf("rates.base_url is empty")
	}
	if c.Rates.CacheTTL < 0 || c.Rates.Timeout <= 0 {
		return fmt.Errorf("rates: invalid durations (cache_ttl %v, timeout %v)", c.Rates.CacheTTL, c.Rates.Timeout)
	}
	if _, err := c.FallbackRates(); err != nil {
		return err
	}

	validBackend := false
	for _, b := range ValidBackends {
		if c.History.Backend == b {
			validBackend = true
			break
		}
	}
	if !validBackend {
		return fmt.Errorf("invalid history backend: %s (valid: %v)", c.History.Backend, ValidBackends)
	}
	if c.History.Backend == "redis" && c.Redis.URL == "" {
		return fmt.Errorf("redis.url is required by the redis history backend")
	}
	if c.History.Key == "" || c.History.Limit <= 0 {
		return fmt.Errorf("history: key must be set and limit positive")
	}

	if _, err := moneytext.ParseCurr(c.Defaults.Source); err != nil {
		return fmt.Errorf("defaults.source: %w", err)
	}
	if _, err := moneytext.ParseCurr(c.Defaults.Target); err != nil {
		return fmt.Errorf("defaults.target: %w", err)
	}

	return nil
}

// DefaultPath returns the path of name inside the user configuration
// directory, for example ~/.config/moneytext/config.yaml.
func DefaultPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "moneytext", name)
}

// HistoryPath returns the sqlite database path, defaulting to history.db in
// the user configuration directory.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return DefaultPath("history.db")
}

// FallbackRates returns the fallback table, parsed.
func (c *Config) FallbackRates() (map[moneytext.Currency]decimal.Decimal, error) {
	rates := make(map[moneytext.Currency]decimal.Decimal, len(c.Rates.Fallback))
	for code, s := range c.Rates.Fallback {
		curr, err := moneytext.ParseCurr(strings.TrimSpace(code))
		if err != nil {
			return nil, fmt.Errorf("rates.fallback: %w", err)
		}
		d, err := decimal.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("rates.fallback[%s]: %w", code, err)
		}
		if !d.IsPos() {
			return nil, fmt.Errorf("rates.fallback[%s]: rate must be positive", code)
		}
		rates[curr] = d
	}
	return rates, nil
}
