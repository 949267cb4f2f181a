// Package config reads process configuration from environment variables.
package config

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds all configuration values.
type Config struct {
	// Catalog source
	CatalogPath string

	// Preferred output unit; empty means auto-select per value
	DefaultUnit string

	// Rendering
	Precision int

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		CatalogPath: getEnv("MAGNITUDE_CATALOG", "objects.json"),
		DefaultUnit: getEnv("MAGNITUDE_DEFAULT_UNIT", ""),
		Precision:   3,

		LogFile:  getEnv("MAGNITUDE_LOG_FILE", "/tmp/magnitude.log"),
		LogLevel: parseLogLevel(getEnv("MAGNITUDE_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
