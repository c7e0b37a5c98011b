// Package logging builds zerolog loggers and carries them through context.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration.
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stderr

	switch cfg.Format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	case "json":
		// JSON is the default zerolog format
		output = os.Stderr
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// FromEnv applies environment overrides to cfg.
// THEATER_LOG_LEVEL: trace, debug, info, warn, error
// THEATER_LOG_FORMAT: json, console
func FromEnv(cfg Config) Config {
	if level := os.Getenv("THEATER_LOG_LEVEL"); level != "" {
		if parsed, ok := ParseLevel(level); ok {
			cfg.Level = parsed
		}
	}

	if format := os.Getenv("THEATER_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return cfg
}

// NewFromEnv creates a logger from defaults plus environment overrides.
func NewFromEnv() zerolog.Logger {
	return New(FromEnv(DefaultConfig()))
}

// ParseLevel maps a config/env level string to a zerolog level.
func ParseLevel(level string) (zerolog.Level, bool) {
	switch level {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	}
	return zerolog.NoLevel, false
}
