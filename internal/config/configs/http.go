package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. CORSOrigins lists the front-end
// origins allowed to call the API from a browser.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// CORSOrigins is a comma separated list, e.g. the Vite dev server.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`
}
