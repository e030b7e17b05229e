package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the agents API
type Config struct {
	// Server
	Port               string
	CORSAllowedOrigins []string

	// Route network store
	SQLiteDatabase string
	DatabaseURL    string // non-empty switches the route repository to Postgres

	// Backend health probe
	BackendHealthURL string
	BackendTimeout   time.Duration

	// Route network cache
	NetworkCacheTTL time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8000"),
		CORSAllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","),

		SQLiteDatabase: getEnv("SQLITE_DATABASE", "data/transit.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),

		BackendHealthURL: getEnv("BACKEND_HEALTH_URL", "http://localhost:3000/api/health"),
		BackendTimeout:   time.Duration(getEnvInt("BACKEND_TIMEOUT_MS", 2000)) * time.Millisecond,

		NetworkCacheTTL: time.Duration(getEnvInt("NETWORK_CACHE_TTL_SECONDS", 60)) * time.Second,
	}
}

// getEnv returns the environment variable value or a fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns the environment variable as an int or a fallback
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
