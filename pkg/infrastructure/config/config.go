// Package config reads engine settings from the environment and BOM check
// policies from YAML files
package config

import (
	"os"
	"strconv"
)

// Environment variables read by Load
const (
	EnvLogLevel   = "MPN_LOG_LEVEL"
	EnvLogFormat  = "MPN_LOG_FORMAT"
	EnvWorkers    = "MPN_WORKERS"
	EnvPolicyFile = "MPN_POLICY_FILE"
	EnvMinScore   = "MPN_MIN_SCORE"
)

var envVars = []string{
	EnvLogLevel,
	EnvLogFormat,
	EnvWorkers,
	EnvPolicyFile,
	EnvMinScore,
}

// Config holds the MPN_* settings present in the environment
type Config struct {
	values map[string]string
}

// Load reads the MPN_* variables from the process environment
func Load() *Config {
	return FromMap(environ())
}

// FromMap builds a Config from explicit values, ignoring empty ones
func FromMap(values map[string]string) *Config {
	cfg := &Config{values: make(map[string]string)}
	for k, v := range values {
		if v != "" {
			cfg.values[k] = v
		}
	}
	return cfg
}

func environ() map[string]string {
	values := make(map[string]string, len(envVars))
	for _, key := range envVars {
		if value := os.Getenv(key); value != "" {
			values[key] = value
		}
	}
	return values
}

func (c *Config) GetString(key, defaultValue string) string {
	if value, exists := c.values[key]; exists {
		return value
	}
	return defaultValue
}

func (c *Config) GetInt(key string, defaultValue int) int {
	if value, exists := c.values[key]; exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) GetFloat(key string, defaultValue float64) float64 {
	if value, exists := c.values[key]; exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
