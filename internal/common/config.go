package common

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the placesearch CLI configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Cache   CacheConfig   `toml:"cache"`
	Logging LoggingConfig `toml:"logging"`
}

// APIConfig configures the Places API client.
type APIConfig struct {
	Key            string `toml:"key" validate:"required"`           // Google Places API key
	RateLimit      int    `toml:"rate_limit" validate:"gte=1"`       // Max requests per second
	RequestTimeout string `toml:"request_timeout"`                   // e.g., "30s" - HTTP request timeout
	BaseURL        string `toml:"base_url" validate:"omitempty,url"` // Override for testing
}

// CacheConfig configures the on-disk response cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"` // Cache API responses between runs
	Path    string `toml:"path"`    // Database directory path
	TTL     string `toml:"ttl"`     // e.g., "24h" - entry lifetime, empty = never expire
}

// LoggingConfig configures the arbor logger.
type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// Timeout returns the parsed request timeout, falling back to 30s.
func (c *APIConfig) Timeout() time.Duration {
	if d, err := time.ParseDuration(c.RequestTimeout); err == nil && d > 0 {
		return d
	}
	return 30 * time.Second
}

// EntryTTL returns the parsed cache entry lifetime, zero when unset.
func (c *CacheConfig) EntryTTL() time.Duration {
	if d, err := time.ParseDuration(c.TTL); err == nil && d > 0 {
		return d
	}
	return 0
}

// DefaultConfig returns the defaults applied before any file or environment
// overrides.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			RateLimit:      10,
			RequestTimeout: "30s",
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    "./data/cache",
			TTL:     "24h",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
	}
}

// LoadConfig loads configuration from an optional TOML file, applies
// environment overrides, and validates the result. An empty path loads
// defaults plus environment only.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Environment takes precedence over the file so keys can stay out of
	// checked-in configuration.
	if key := os.Getenv("PLACES_API_KEY"); key != "" {
		config.API.Key = key
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
