package config

import (
	"github.com/caarlos0/env/v11"

	"peak-placements/internal/config/configs"
)

// Config aggregates all configuration sections for the scheduling
// service. Fields are populated from environment variables using the
// caarlos0/env library; nested structs are tagged with envPrefix so their
// fields are parsed with the given prefix. Use Load to construct one.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). Useful
	// for logging context.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server, prefix HTTP_.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger, prefix LOG_.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection, prefix PSQL_.
	Psql configs.Postgres `envPrefix:"PSQL_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their declared defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
