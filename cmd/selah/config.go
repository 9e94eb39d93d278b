package main

import (
	"os"
	"strconv"
)

// Config holds the CLI's runtime settings, read from the environment.
type Config struct {
	DBPath       string // SELAH_DB
	HistoryLimit int    // SELAH_HISTORY_LIMIT
	LogLevel     string // SELAH_LOG_LEVEL
}

// loadConfig reads settings from the environment, falling back to defaults.
func loadConfig() Config {
	return Config{
		DBPath:       getEnvOrDefault("SELAH_DB", "selah.db"),
		HistoryLimit: getEnvIntOrDefault("SELAH_HISTORY_LIMIT", 100),
		LogLevel:     getEnvOrDefault("SELAH_LOG_LEVEL", "warn"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
