// Package config provides configuration for the chess binaries.
package config

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chessmove-go/internal/engine"
	"github.com/lgbarn/chessmove-go/internal/errors"
)

// DefaultGameFile is used by save and load when no file is named.
const DefaultGameFile = "game.txt"

// Config holds all program configuration.
type Config struct {
	// Position every new game starts from.
	StartFEN string

	// File used by save and load without an argument.
	GameFile string

	// Logging
	LogLevel  string
	LogOutput io.Writer

	// Board display
	Colour  bool // chequered ANSI background
	Unicode bool // piece glyphs instead of letters

	// Number of goroutines used for batch verification.
	Workers int

	Server ServerConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		StartFEN:  engine.InitialFEN,
		GameFile:  DefaultGameFile,
		LogLevel:  "warn",
		LogOutput: os.Stderr,
		Colour:    true,
		Unicode:   true,
		Workers:   runtime.NumCPU(),
		Server:    DefaultServerConfig(),
	}
}

// Validate checks the configuration and returns an error wrapping
// errors.ErrInvalidConfig describing the first problem found.
func (c *Config) Validate() error {
	if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "start position: %v", err)
	}
	if strings.TrimSpace(c.GameFile) == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "game file must not be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.LogLevel)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	return c.Server.Validate()
}
