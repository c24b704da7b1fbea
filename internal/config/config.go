package config

import (
	"os"
	"path/filepath"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Key-value store credentials. Empty values disable the share
	// feature rather than failing startup.
	KVRestURL   string
	KVRestToken string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// DataDir is where the linkgen CLI keeps its published/history lists.
	DataDir string
}

// Load reads configuration from environment variables with sensible defaults.
//
// The store credentials accept two naming conventions: the current KV_* names
// and the legacy UPSTASH_* names kept for deployments that predate the rename.
// The first non-empty value wins.
func Load() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerAddr: getEnv("SERVER_ADDR", ":3000"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:3000"),

		KVRestURL:   firstEnv("KV_REST_API_URL", "UPSTASH_REDIS_REST_URL"),
		KVRestToken: firstEnv("KV_REST_API_TOKEN", "UPSTASH_REDIS_REST_TOKEN"),

		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		DataDir: getEnv("PROMPTLINK_DATA_DIR", defaultDataDir()),
	}
}

// StoreConfigured reports whether both key-value store credentials are set.
func (c *Config) StoreConfigured() bool {
	return c.KVRestURL != "" && c.KVRestToken != ""
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// firstEnv returns the first non-empty value among the candidate variables.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".promptlink"
	}
	return filepath.Join(dir, "promptlink")
}
