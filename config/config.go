// Package config loads service configuration from the environment.
// A .env file in the working directory is honored when present, so the
// service runs the same way locally and in a container.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	// Server
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Snapshot backend: "json" or "sqlite"
	Backend string

	// JSON snapshot documents
	SchedulePath string
	UpdatesPath  string

	// SQLite staging database
	DBPath string
}

// Load reads configuration from environment variables, applying
// defaults for anything unset. A missing .env file is not an error.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:         getEnvAsInt("PORT", 8080),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 15)) * time.Second,
		Backend:      getEnv("WORKFORCE_BACKEND", "json"),
		SchedulePath: getEnv("WORKFORCE_SCHEDULE_PATH", "./data/daily_staff.json"),
		UpdatesPath:  getEnv("WORKFORCE_UPDATES_PATH", "./data/daily_updates.json"),
		DBPath:       getEnv("WORKFORCE_DB_PATH", "./data/workforce.db"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
