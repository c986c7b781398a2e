package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the API server configuration, parsed from the environment.
type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	Env         string        `env:"ENV" envDefault:"development"`
	DatabaseDSN string        `env:"DATABASE_DSN" envDefault:"root:password@tcp(127.0.0.1:3306)/entropass?parseTime=true"`
	JWTSecret   string        `env:"JWT_SECRET" envDefault:"dev-secret-change-in-production"`
	JWTExpiry   time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
}

// Load parses the configuration from environment variables and enforces that
// production deployments never run with the development JWT secret.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to parse environment configuration", "error", err)
		os.Exit(1)
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}
