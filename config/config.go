// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/khatiyan/backend/internal/domain/valueobject"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Calculator CalculatorConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	Environment     string
}

// CalculatorConfig holds the defaults of the share calculator.
type CalculatorConfig struct {
	Locale            valueobject.Locale
	NumberLocale      string
	DefaultHazariMode valueobject.HazariMode
	MaxOwners         int
}

// LogConfig holds structured logging configuration.
type LogConfig struct {
	Level     slog.Level
	Format    string // json or text
	AddSource bool
}

// Load loads configuration from environment variables.
func Load() *Config {
	hazariMode := valueobject.HazariMode(getEnv("CALC_DEFAULT_HAZARI_MODE", string(valueobject.HazariModeTotal)))
	if !hazariMode.IsValid() {
		hazariMode = valueobject.HazariModeTotal
	}

	return &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			MaxBodyBytes:    int64(getEnvAsInt("SERVER_MAX_BODY_BYTES", 1<<20)),
			Environment:     getEnv("ENV", "development"),
		},
		Calculator: CalculatorConfig{
			Locale:            valueobject.ParseLocale(getEnv("CALC_LOCALE", string(valueobject.LocaleBengali))),
			NumberLocale:      getEnv("CALC_NUMBER_LOCALE", "en-US"),
			DefaultHazariMode: hazariMode,
			MaxOwners:         getEnvAsInt("CALC_MAX_OWNERS", 500),
		},
		Log: LogConfig{
			Level:     getEnvAsLogLevel("LOG_LEVEL", slog.LevelInfo),
			Format:    strings.ToLower(getEnv("LOG_FORMAT", "json")),
			AddSource: getEnvAsBool("LOG_ADD_SOURCE", false),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsLogLevel(key string, defaultValue slog.Level) slog.Level {
	if value, exists := os.LookupEnv(key); exists {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}
