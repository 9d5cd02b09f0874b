package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"adboard/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Source selects the ad record source. Environment variables prefixed
	// with SOURCE_ will populate this struct.
	Source configs.Source `envPrefix:"SOURCE_"`

	// Redis configures the optional listing cache (REDIS_ prefix).
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Remote configures the upstream backend used by the "remote" source
	// (REMOTE_ prefix).
	Remote configs.Remote `envPrefix:"REMOTE_"`
}

// Load reads configuration from environment variables into a Config. A .env
// file in the working directory, when present, is loaded first; variables
// already set in the environment win. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Source.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
