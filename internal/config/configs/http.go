package configs

import "time"

// HTTP defines configuration for the dashboard HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080" validate:"gt=0"`
	// ShutdownTimeout bounds graceful shutdown after a termination signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// RequestTimeout bounds a single page load, dataset reads included.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	// CORSOrigins lists origins allowed to call the JSON API from a browser.
	// Empty disables CORS headers.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}
