package config

import (
	"time"

	"github.com/lgbarn/chessmove-go/internal/errors"
)

// ServerConfig holds the websocket server configuration.
type ServerConfig struct {
	Addr         string        // Address to listen on (default ":8080")
	ReadTimeout  time.Duration // Read timeout (default 30s)
	WriteTimeout time.Duration // Write timeout (default 30s)
	IdleTimeout  time.Duration // Idle timeout (default 60s)
}

// DefaultServerConfig returns a ServerConfig with the default timeouts.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:         ":8080",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Validate rejects an empty address and negative timeouts.
func (s ServerConfig) Validate() error {
	if s.Addr == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "server address must not be empty")
	}
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 || s.IdleTimeout < 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "server timeouts must not be negative")
	}
	return nil
}
