// Package config loads runtime configuration with layered sources:
// struct defaults first, then environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type IdentityConfig struct {
	// BaseURL is the root of the hosted identity service, e.g.
	// https://abc.supabase.co. Tokens are resolved against it on every
	// authenticated request.
	BaseURL    string        `koanf:"base_url"`
	ServiceKey string        `koanf:"service_key"`
	Timeout    time.Duration `koanf:"timeout"`
}

type Config struct {
	Port           int            `koanf:"port"`
	Env            string         `koanf:"env"`
	StorageBackend string         `koanf:"storage_backend"`
	DatabaseURL    string         `koanf:"database_url"`
	Identity       IdentityConfig `koanf:"identity"`
}

func defaultConfig() *Config {
	return &Config{
		Port:           8080,
		Env:            EnvDevelopment,
		StorageBackend: StorageMemory,
		Identity: IdentityConfig{
			Timeout: 10 * time.Second,
		},
	}
}

// envMappings names every environment variable the service reads.
// Unknown variables are ignored.
var envMappings = map[string]string{
	"PORT":                 "port",
	"APP_ENV":              "env",
	"STORAGE_BACKEND":      "storage_backend",
	"DATABASE_URL":         "database_url",
	"IDENTITY_BASE_URL":    "identity.base_url",
	"IDENTITY_SERVICE_KEY": "identity.service_key",
	"IDENTITY_TIMEOUT":     "identity.timeout",
}

// Load builds the configuration from defaults overridden by environment
// variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	envProvider := env.Provider("", ".", func(key string) string {
		return envMappings[strings.ToUpper(key)]
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("invalid env %q", c.Env)
	}
	switch c.StorageBackend {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required with the postgres backend")
		}
	default:
		return fmt.Errorf("invalid storage backend %q", c.StorageBackend)
	}
	if c.Identity.BaseURL == "" {
		return fmt.Errorf("IDENTITY_BASE_URL is required")
	}
	if c.Identity.ServiceKey == "" {
		return fmt.Errorf("IDENTITY_SERVICE_KEY is required")
	}
	if c.Identity.Timeout <= 0 {
		return fmt.Errorf("identity timeout must be positive")
	}
	return nil
}

// IsDevelopment reports whether verbose error responses are allowed.
func (c *Config) IsDevelopment() bool { return c.Env == EnvDevelopment }
