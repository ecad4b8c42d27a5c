// chess-server serves independent chess games over websockets.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chessmove-go/internal/config"
	"github.com/lgbarn/chessmove-go/internal/server"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("chess-server version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	log := config.NewLogger(cfg)

	stop, err := config.StartProfile(*profileMode, *profileDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = server.New(cfg, log).Run(ctx)
	cancel()
	stop()

	if err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-server [options]\n\n")
	fmt.Fprintf(os.Stderr, "Serves one chess game per websocket connection on /ws.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment: %s %s %s %s %s %s\n",
		config.EnvAddr, config.EnvStartFEN, config.EnvLogLevel,
		config.EnvReadTime, config.EnvWriteTime, config.EnvIdleTime)
}
