// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
	IsDatabaseEnabled() bool
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// DatasetConfig provides settings for the historical dataset loader.
type DatasetConfig interface {
	GetDataDir() string
}

// PredictorConfig provides settings for the external ML prediction service.
type PredictorConfig interface {
	GetPredictorURL() string
	GetPredictorTimeout() time.Duration
	IsPredictorEnabled() bool
}

// =============================================================================
// Config
// =============================================================================

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env      string
	HTTPAddr string

	DatabaseURL string

	DataDir string

	PredictorURL     string
	PredictorTimeout time.Duration

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool
}

// Load reads configuration from the environment, loading a .env file first
// when present. Missing optional values fall back to development defaults.
func Load() (*Config, error) {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DataDir:          getEnv("DATA_DIR", "data"),
		PredictorURL:     os.Getenv("PREDICTOR_URL"),
		PredictorTimeout: getEnvDuration("PREDICTOR_TIMEOUT", 2*time.Second),
		CORSAllowAll:     getEnvBool("CORS_ALLOW_ALL", true),
		CORSOrigins:      splitCSV(os.Getenv("CORS_ORIGINS")),
		CORSAllowCreds:   getEnvBool("CORS_ALLOW_CREDENTIALS", false),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// =============================================================================
// Interface implementations
// =============================================================================

// GetDatabaseURL returns the Postgres connection string.
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// IsDatabaseEnabled reports whether Postgres persistence is configured.
// When disabled the application falls back to the in-memory lead store.
func (c *Config) IsDatabaseEnabled() bool { return strings.TrimSpace(c.DatabaseURL) != "" }

// GetHTTPAddr returns the HTTP listen address.
func (c *Config) GetHTTPAddr() string { return c.HTTPAddr }

// GetCORSAllowAll reports whether all origins are allowed.
func (c *Config) GetCORSAllowAll() bool { return c.CORSAllowAll }

// GetCORSOrigins returns the explicit allowed origins.
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// GetCORSAllowCreds reports whether credentials are allowed in CORS requests.
func (c *Config) GetCORSAllowCreds() bool { return c.CORSAllowCreds }

// GetDataDir returns the directory containing the CSV datasets.
func (c *Config) GetDataDir() string { return c.DataDir }

// GetPredictorURL returns the base URL of the external prediction service.
func (c *Config) GetPredictorURL() string { return c.PredictorURL }

// GetPredictorTimeout returns the request timeout for the prediction service.
func (c *Config) GetPredictorTimeout() time.Duration { return c.PredictorTimeout }

// IsPredictorEnabled reports whether the external prediction service is configured.
func (c *Config) IsPredictorEnabled() bool { return strings.TrimSpace(c.PredictorURL) != "" }
