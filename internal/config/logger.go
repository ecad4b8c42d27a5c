package config

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// ParseLevel converts a level name such as "debug" or "warn" to a zerolog
// level. The empty string means info.
func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
}

// NewLogger builds the logger described by cfg. Output defaults to stderr
// and an unknown level falls back to warn.
func NewLogger(cfg *Config) zerolog.Logger {
	var out io.Writer = os.Stderr
	if cfg.LogOutput != nil {
		out = cfg.LogOutput
	}

	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
