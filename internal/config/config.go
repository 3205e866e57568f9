package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the TTS server
type Config struct {
	// Server configuration
	Port        string `envconfig:"PORT" default:"3010"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"tts-server"`

	// Google Cloud TTS configuration
	// Credentials are resolved by the client library from
	// GOOGLE_APPLICATION_CREDENTIALS / ambient ADC; only the call timeout
	// and the voice catalog filter live here.
	SupportedLanguages []string `envconfig:"SUPPORTED_LANGUAGES" default:"en,ru,he"` // 2-letter prefixes used to filter the voice catalog
	TTSTimeout         int      `envconfig:"TTS_TIMEOUT" default:"30"`               // seconds, bound on each Google API call

	// Activity log database configuration
	// DATABASE_URL empty means activity logging is disabled entirely.
	DatabaseURL    string `envconfig:"DATABASE_URL" default:""`
	DBPoolMinConns int32  `envconfig:"DB_POOL_MIN_CONNS" default:"1"`
	DBPoolMaxConns int32  `envconfig:"DB_POOL_MAX_CONNS" default:"5"`

	// Observability configuration
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`       // Log level: debug, info, warn, error
	LogPretty      bool   `envconfig:"LOG_PRETTY" default:"false"`     // Pretty print logs (for development)
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"` // Enable Prometheus metrics
}

// Load reads configuration from environment variables
// It first attempts to load from .env file if it exists, then from environment
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	return LoadFromEnv()
}

// LoadFromEnv loads configuration directly from environment variables
// without attempting to load .env file (useful for containerized deployments)
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.SupportedLanguages) == 0 {
		return fmt.Errorf("SUPPORTED_LANGUAGES must list at least one language prefix")
	}
	if c.TTSTimeout <= 0 {
		return fmt.Errorf("TTS_TIMEOUT must be positive, got %d", c.TTSTimeout)
	}
	if c.DBPoolMinConns < 0 || c.DBPoolMaxConns < 1 {
		return fmt.Errorf("invalid pool bounds: min=%d max=%d", c.DBPoolMinConns, c.DBPoolMaxConns)
	}
	if c.DBPoolMinConns > c.DBPoolMaxConns {
		return fmt.Errorf("DB_POOL_MIN_CONNS (%d) exceeds DB_POOL_MAX_CONNS (%d)", c.DBPoolMinConns, c.DBPoolMaxConns)
	}
	return nil
}

// GetEnv returns the value of an environment variable or a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
