// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessmove-go/internal/config"
)

// envDefaults seeds every flag default from the CHESS_* environment.
var envDefaults = config.FromEnv()

var (
	// Game options
	startFEN = flag.String("fen", envDefaults.StartFEN, "Start position in FEN")
	gameFile = flag.String("file", envDefaults.GameFile, "Default file for save and load (.zst and .bz2 are compressed)")

	// Display options
	colour  = flag.Bool("colour", envDefaults.Colour, "Use ANSI colours")
	unicode = flag.Bool("unicode", envDefaults.Unicode, "Draw pieces with unicode symbols")

	// Batch verification
	verify  = flag.Bool("verify", false, "Verify the saved games named as arguments and exit")
	workers = flag.Int("workers", envDefaults.Workers, "Number of verification workers")

	// Diagnostics
	logLevel    = flag.String("log-level", envDefaults.LogLevel, "Log level: debug, info, warn, error")
	profileMode = flag.String("profile", "", "Write a cpu or mem profile")
	profileDir  = flag.String("profile-dir", ".", "Directory for profile output")

	// Help
	version = flag.Bool("version", false, "Print version and exit")
)

// applyFlags copies flag values into the configuration.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyDisplayFlags(cfg)
	cfg.Workers = *workers
	cfg.LogLevel = *logLevel
}

func applyGameFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.GameFile = *gameFile
}

func applyDisplayFlags(cfg *config.Config) {
	cfg.Colour = *colour
	cfg.Unicode = *unicode
}
