package configs

import (
	"fmt"
	"time"
)

// Source kinds.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceRemote   = "remote"
)

// Source selects where ad records come from and how listings are paged.
type Source struct {
	// Kind is one of "file", "postgres" or "remote".
	Kind string `env:"KIND" envDefault:"file"`
	// DataPath is the JSON array file served by the "file" source.
	DataPath string `env:"DATA_PATH" envDefault:"data/scraped-data.json"`
	// Watch reloads the data file when it changes on disk.
	Watch bool `env:"WATCH" envDefault:"true"`

	DefaultLimit int `env:"DEFAULT_LIMIT" envDefault:"100"`
	MaxLimit     int `env:"MAX_LIMIT" envDefault:"500"`

	// Timezone decides what "today" means for the last-active filter.
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`
}

// Location loads the configured time zone.
func (c Source) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks the source kind.
func (c Source) Validate() error {
	switch c.Kind {
	case SourceFile, SourcePostgres, SourceRemote:
		return nil
	default:
		return fmt.Errorf("unknown source kind %q", c.Kind)
	}
}
