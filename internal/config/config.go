// Package config loads server configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds server configuration.
type Config struct {
	Port         int
	DatabasePath string // empty = db.DefaultPath()
	BaseURL      string // e.g. http://localhost:8080, used as the WebAuthn origin
	DevMode      bool   // text logs, insecure cookies
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() Config {
	// Missing .env is the normal case in production.
	_ = godotenv.Load()

	return Config{
		Port:         envInt("TC_PORT", 8080),
		DatabasePath: os.Getenv("TC_DB_PATH"),
		BaseURL:      envOrDefault("TC_BASE_URL", "http://localhost:8080"),
		DevMode:      os.Getenv("TC_DEV_MODE") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
