// Package logging builds the zap loggers used by the engine and the CLI
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// Config holds logging configuration
type Config struct {
	Level       string            `json:"level" yaml:"level"`
	Format      string            `json:"format" yaml:"format"` // "json" or "console"
	OutputPath  string            `json:"output_path" yaml:"output_path"`
	Fields      map[string]string `json:"fields" yaml:"fields"`
	Development bool              `json:"development" yaml:"development"`
}

// DefaultConfig logs JSON at info level to stderr
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "json",
		Fields: map[string]string{"service": "mpn"},
	}
}

// NewLogger builds a zap logger from the config. An unparsable level falls
// back to info; an unknown format is an error.
func NewLogger(config Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if config.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	switch config.Format {
	case "", "json":
		zapConfig.Encoding = "json"
	case "console":
		zapConfig.Encoding = "console"
	default:
		return nil, fmt.Errorf("unknown log format %q", config.Format)
	}

	if config.OutputPath != "" {
		zapConfig.OutputPaths = []string{config.OutputPath}
	} else {
		zapConfig.OutputPaths = []string{"stderr"}
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	fields := make([]zap.Field, 0, len(config.Fields))
	for k, v := range config.Fields {
		fields = append(fields, zap.String(k, v))
	}
	return logger.With(fields...), nil
}

// NewNop returns a logger that discards everything
func NewNop() *zap.Logger {
	return zap.NewNop()
}
