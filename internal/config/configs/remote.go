package configs

import "time"

// Remote points at the upstream backend that serves paged ad listings.
type Remote struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:8000/api/v1"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
