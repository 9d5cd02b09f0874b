package configs

import "time"

// Redis configures the optional response cache in front of the source.
type Redis struct {
	Enabled bool          `env:"ENABLED" envDefault:"false"`
	Addr    string        `env:"ADDRESS" envDefault:"localhost:6379"`
	TTL     time.Duration `env:"TTL" envDefault:"1m"`
}
