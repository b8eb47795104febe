package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	DataDir     string
	DatabaseDSN string
	Env         string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.DataDir = getEnv("DATA_DIR", "data")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", filepath.Join(cfg.DataDir, "ggs_accounting.sqlite"))
	cfg.Env = getEnv("APP_ENV", "development")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
