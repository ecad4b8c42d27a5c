// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessmove-go/internal/config"
)

var envDefaults = config.FromEnv()

var (
	addr         = flag.String("addr", envDefaults.Server.Addr, "Listen address")
	startFEN     = flag.String("fen", envDefaults.StartFEN, "Start position in FEN for new games")
	readTimeout  = flag.Duration("read-timeout", envDefaults.Server.ReadTimeout, "HTTP read timeout")
	writeTimeout = flag.Duration("write-timeout", envDefaults.Server.WriteTimeout, "HTTP write timeout")
	idleTimeout  = flag.Duration("idle-timeout", envDefaults.Server.IdleTimeout, "HTTP idle timeout")

	logLevel    = flag.String("log-level", envDefaults.LogLevel, "Log level: debug, info, warn, error")
	profileMode = flag.String("profile", "", "Write a cpu or mem profile")
	profileDir  = flag.String("profile-dir", ".", "Directory for profile output")

	version = flag.Bool("version", false, "Print version and exit")
)

func applyFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.LogLevel = *logLevel
	cfg.Server.Addr = *addr
	cfg.Server.ReadTimeout = *readTimeout
	cfg.Server.WriteTimeout = *writeTimeout
	cfg.Server.IdleTimeout = *idleTimeout
}
