package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DevFallbackSecret is the signing secret applied when APP_SECRET is unset in
// development. Production refuses to start without an explicit secret.
const DevFallbackSecret = "secret"

// Config holds the application configuration.
type Config struct {
	AppEnv       string        `envconfig:"APP_ENV" default:"development"`
	ServerPort   int           `envconfig:"PORT" default:"8080"`
	DatabasePath string        `envconfig:"DATABASE_PATH" default:"./kennel.db"`
	AppSecret    string        `envconfig:"APP_SECRET"`
	TokenTTL     time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	LogFormat    string        `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`

	// SecretFallback is set when the dev fallback secret was applied, so the
	// caller can warn operators instead of defaulting silently.
	SecretFallback bool `ignored:"true"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.AppSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("APP_SECRET must be set in production")
		}
		cfg.AppSecret = DevFallbackSecret
		cfg.SecretFallback = true
	}

	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
