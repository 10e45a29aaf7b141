// Package config handles application configuration management.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all folio data (~/.folio)
	BaseDir string

	// Server settings for `folio serve`
	Server ServerConfig

	// API settings for the admin console and session commands
	API APIConfig

	// Mail settings for contact form notifications
	Mail MailConfig
}

// ServerConfig holds REST backend settings.
type ServerConfig struct {
	Addr      string        `env:"FOLIO_ADDR" envDefault:":8080"`
	DBPath    string        `env:"FOLIO_DB_PATH"`
	JWTSecret string        `env:"FOLIO_JWT_SECRET" envDefault:"dev-secret-key"`
	TokenTTL  time.Duration `env:"FOLIO_TOKEN_TTL" envDefault:"24h"`

	// Login attempts allowed per minute before 429s
	LoginRate int `env:"FOLIO_LOGIN_RATE" envDefault:"10"`
}

// APIConfig holds settings for talking to the backend.
type APIConfig struct {
	BaseURL string `env:"FOLIO_API_URL" envDefault:"http://localhost:8080"`
}

// MailConfig holds Resend settings. Email notification is disabled when
// APIKey is empty.
type MailConfig struct {
	APIKey     string `env:"FOLIO_RESEND_API_KEY"`
	From       string `env:"FOLIO_MAIL_FROM" envDefault:"folio@localhost"`
	AdminEmail string `env:"FOLIO_ADMIN_EMAIL"`
}

// Load reads configuration from environment variables and fills in
// path defaults under the base directory.
func Load() (*Config, error) {
	cfg := &Config{BaseDir: DefaultBaseDir()}

	if dir := os.Getenv("FOLIO_HOME"); dir != "" {
		cfg.BaseDir = dir
	}

	if err := env.Parse(&cfg.Server); err != nil {
		return nil, fmt.Errorf("parse server env: %w", err)
	}
	if err := env.Parse(&cfg.API); err != nil {
		return nil, fmt.Errorf("parse api env: %w", err)
	}
	if err := env.Parse(&cfg.Mail); err != nil {
		return nil, fmt.Errorf("parse mail env: %w", err)
	}

	if cfg.Server.DBPath == "" {
		cfg.Server.DBPath = GetPaths(cfg).Database
	}

	if err := os.MkdirAll(cfg.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("create base directory: %w", err)
	}

	return cfg, nil
}
