// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local .env file, when
present, is loaded first with 'joho/godotenv'; real environment variables win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/melodia/internal/platform/constants"
	"github.com/taibuivan/melodia/internal/platform/validate"
)

// DotEnvFile is the optional file read before parsing the environment.
const DotEnvFile = ".env"

// # Configuration Schema

// Config holds all runtime configuration for the Melodia API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database: "postgres" (pgx) or "sqlite" (GORM)
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"postgres"`
	DatabaseURL    string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
	AutoMigrate   bool   `env:"AUTO_MIGRATE"   envDefault:"true"`

	// Key-Value Cache (Redis). The artist cache is disabled when RedisURL is empty.
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"melodia.app"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// A missing .env file is the normal production case.
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read %s: %w", DotEnvFile, err)
	}

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	validator := &validate.Validator{}
	validator.
		Required("DATABASE_URL", c.DatabaseURL).
		OneOf("DATABASE_DRIVER", c.DatabaseDriver, constants.DriverPostgres, constants.DriverSQLite).
		Custom("CACHE_TTL", c.CacheTTL < 0, "Must not be negative")
	return validator.Err()
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CacheEnabled reports whether artist lookups should go through Redis.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != "" && c.CacheTTL > 0
}

// OriginSuffix implements the CORS middleware configuration.
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}
