package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"saathi-bazaar/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP   configs.HTTP     `envPrefix:"HTTP_"`
	Log    configs.Logger   `envPrefix:"LOG_"`
	Psql   configs.Postgres `envPrefix:"PSQL_"`
	Redis  configs.Redis    `envPrefix:"REDIS_"`
	Ledger configs.Ledger   `envPrefix:"LEDGER_"`
	Auth   configs.Auth     `envPrefix:"AUTH_"`
}

// Load reads configuration from environment variables into a Config and
// checks the values that have no safe fallback.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Ledger.MaxAttempts < 1 {
		return cfg, fmt.Errorf("LEDGER_MAX_ATTEMPTS must be at least 1, got %d", cfg.Ledger.MaxAttempts)
	}
	if cfg.Ledger.NotifyWorkers < 1 {
		return cfg, fmt.Errorf("LEDGER_NOTIFY_WORKERS must be at least 1, got %d", cfg.Ledger.NotifyWorkers)
	}
	if cfg.Redis.Enabled && cfg.Redis.Channel == "" {
		return cfg, fmt.Errorf("REDIS_CHANNEL is required when REDIS_ENABLED is set")
	}
	return cfg, nil
}
