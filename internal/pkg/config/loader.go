// Package config loads application configuration from environment variables
// with validated fallbacks.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadEnvString loads a string value from an environment variable, returning
// the default when the variable is not set.
func LoadEnvString(envKey, defaultValue string) string {
	if value := os.Getenv(envKey); value != "" {
		return value
	}
	return defaultValue
}

// LoadEnvInt loads a positive integer from an environment variable, falling
// back to the default when the variable is unset, unparsable or not positive.
func LoadEnvInt(envKey string, defaultValue int) int {
	value := os.Getenv(envKey)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// LoadEnvDuration loads a positive duration (Go duration syntax) from an
// environment variable, falling back to the default on any failure.
func LoadEnvDuration(envKey string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(envKey)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// LoadEnvStringSlice loads a comma-separated list from an environment
// variable, trimming whitespace around each element.
func LoadEnvStringSlice(envKey string, defaultValue []string) []string {
	value := os.Getenv(envKey)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
