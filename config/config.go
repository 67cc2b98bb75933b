package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the dashboard API.
type Config struct {
	GlobalCSVPath string
	HemiCSVPath   string
	DatabaseURL   string
	Port          int
	BearerToken   string
}

// Load reads configuration from environment variables (optionally .env).
// When DATABASE_URL is set the tables are read from Postgres; otherwise
// from the two CSV files.
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		GlobalCSVPath: "merged_global.csv",
		HemiCSVPath:   "hemispheric_merged.csv",
		Port:          8080,
	}

	if path := os.Getenv("GLOBAL_CSV_PATH"); path != "" {
		cfg.GlobalCSVPath = path
	}
	if path := os.Getenv("HEMI_CSV_PATH"); path != "" {
		cfg.HemiCSVPath = path
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := os.Getenv("API_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
	}

	cfg.BearerToken = os.Getenv("API_BEARER_TOKEN")

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
