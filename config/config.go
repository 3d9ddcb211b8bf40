package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	Debug       bool
	ServiceName string

	// CORS
	AllowedOrigins []string

	// Uploads
	MaxUploadBytes int64

	// Timeouts
	ShutdownTimeoutSeconds int
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Debug:       getEnvBool("DEBUG", false),
		ServiceName: getEnv("SERVICE_NAME", "interview-coach-backend"),

		// CORS
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{
			"http://localhost",
			"http://localhost:3000",
			"http://localhost:8000",
			"http://127.0.0.1",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:8000",
		}),

		// Uploads (8 MiB default)
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 8<<20),

		// Timeouts
		ShutdownTimeoutSeconds: getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 30),
	}

	return cfg
}

// Validate checks if the configuration is usable
func (c *Config) Validate() error {
	if c.Port == "" {
		return &ConfigError{Field: "PORT", Message: "PORT must not be empty"}
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return &ConfigError{Field: "PORT", Message: "PORT must be a number"}
	}
	if c.MaxUploadBytes <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_BYTES", Message: "MAX_UPLOAD_BYTES must be positive"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				list = append(list, trimmed)
			}
		}
		if len(list) > 0 {
			return list
		}
	}
	return defaultValue
}
