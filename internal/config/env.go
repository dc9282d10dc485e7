// Package config provides tuning defaults and environment overrides.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvFloat parses a finite, non-negative float from the environment.
// The fallback is returned together with an error when the value is unusable.
func GetEnvFloat(key string, fallback float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fallback, fmt.Errorf("%s: %q must be finite and non-negative", key, raw)
	}
	return v, nil
}

// GetEnvInt parses a positive integer from the environment.
func GetEnvInt(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	if v <= 0 {
		return fallback, fmt.Errorf("%s: %q must be positive", key, raw)
	}
	return v, nil
}

// GetEnvDuration parses a positive time.Duration such as "100ms".
func GetEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	if v <= 0 {
		return fallback, fmt.Errorf("%s: %q must be positive", key, raw)
	}
	return v, nil
}
