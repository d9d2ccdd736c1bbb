// Package config reads server settings from the environment, with a local
// .env file as a convenience for development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// DatabasePath is the SQLite file location.
	DatabasePath string
	// CORSAllowedOrigins lists the origins the browser client may call from.
	CORSAllowedOrigins []string
}

// Load reads the environment, applying defaults suitable for local use.
// A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getenv("PORT", "8080"),
		DatabasePath:       getenv("DATABASE_PATH", "surat.db"),
		CORSAllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// Addr returns the listen address for http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
