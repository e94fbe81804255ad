package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config is the full runtime configuration, loaded from the environment.
type Config struct {
	Env       string `env:"ENV"        envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Port      int    `env:"PORT"       envDefault:"8080"`

	// Path to the SQLite database file.
	DatabaseFile string `env:"MONETA_DATABASE_FILE" envDefault:"moneta.db"`

	// SessionSecret signs session tokens (HS256); at least 32 bytes.
	SessionSecret string        `env:"MONETA_SESSION_SECRET,required"`
	SessionIssuer string        `env:"MONETA_SESSION_ISSUER" envDefault:"moneta"`
	SessionTTL    time.Duration `env:"MONETA_SESSION_TTL"    envDefault:"168h"`

	// AdminKey guards the invitation management endpoints. When empty the
	// admin surface is disabled entirely.
	AdminKey string `env:"MONETA_ADMIN_KEY"`

	// Aggregator credentials. With no base URL configured the service runs
	// against the built-in mock, which is only useful for development.
	AggregatorBaseURL  string `env:"MONETA_AGGREGATOR_BASE_URL"`
	AggregatorClientID string `env:"MONETA_AGGREGATOR_CLIENT_ID"`
	AggregatorSecret   string `env:"MONETA_AGGREGATOR_SECRET"`

	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

const minSessionSecretLen = 32

// LoadConfig parses configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if len(cfg.SessionSecret) < minSessionSecretLen {
		return Config{}, fmt.Errorf("MONETA_SESSION_SECRET must be at least %d bytes", minSessionSecretLen)
	}
	if cfg.AggregatorBaseURL != "" && (cfg.AggregatorClientID == "" || cfg.AggregatorSecret == "") {
		return Config{}, fmt.Errorf("MONETA_AGGREGATOR_CLIENT_ID and MONETA_AGGREGATOR_SECRET are required when a base URL is set")
	}

	return cfg, nil
}
