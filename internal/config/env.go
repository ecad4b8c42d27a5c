package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read as flag defaults by the binaries.
const (
	EnvStartFEN  = "CHESS_START_FEN"
	EnvGameFile  = "CHESS_GAME_FILE"
	EnvLogLevel  = "CHESS_LOG_LEVEL"
	EnvColour    = "CHESS_COLOUR"
	EnvUnicode   = "CHESS_UNICODE"
	EnvWorkers   = "CHESS_WORKERS"
	EnvAddr      = "CHESS_ADDR"
	EnvReadTime  = "CHESS_READ_TIMEOUT"
	EnvWriteTime = "CHESS_WRITE_TIMEOUT"
	EnvIdleTime  = "CHESS_IDLE_TIMEOUT"
)

// Getenv returns the value of key, or def when it is unset or empty.
func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetenvBool reads a yes/no style variable. Unrecognised values give def.
func GetenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

// GetenvInt reads an integer variable.
func GetenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// GetenvDuration reads a duration such as "30s".
func GetenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	return def
}

// FromEnv returns the defaults overridden by any CHESS_* variables.
func FromEnv() *Config {
	cfg := NewConfig()
	cfg.StartFEN = Getenv(EnvStartFEN, cfg.StartFEN)
	cfg.GameFile = Getenv(EnvGameFile, cfg.GameFile)
	cfg.LogLevel = Getenv(EnvLogLevel, cfg.LogLevel)
	cfg.Colour = GetenvBool(EnvColour, cfg.Colour)
	cfg.Unicode = GetenvBool(EnvUnicode, cfg.Unicode)
	cfg.Workers = GetenvInt(EnvWorkers, cfg.Workers)
	cfg.Server.Addr = Getenv(EnvAddr, cfg.Server.Addr)
	cfg.Server.ReadTimeout = GetenvDuration(EnvReadTime, cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = GetenvDuration(EnvWriteTime, cfg.Server.WriteTimeout)
	cfg.Server.IdleTimeout = GetenvDuration(EnvIdleTime, cfg.Server.IdleTimeout)
	return cfg
}
