// Package config reads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Env      string
	LogLevel string
}

func (a AppConfig) IsDevelopment() bool {
	return a.Env == "development" || a.Env == "dev"
}

type DatabaseConfig struct {
	URL string
}

// Configured reports whether a catalog database is available.
func (d DatabaseConfig) Configured() bool {
	return d.URL != ""
}

// Load reads configuration from environment variables. Values from the
// optional env files fill in variables that are not already set.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("godotenv.Load[%s]: %w", file, err)
		}
	}

	cfg := &Config{}

	cfg.App.Env = getEnvOrDefault("APP_ENV", "development")
	cfg.App.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")
	cfg.Database.URL = os.Getenv("DATABASE_URL")

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
