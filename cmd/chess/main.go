// chess is an interactive two-player chess board for the terminal.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessmove-go/internal/config"
	"github.com/lgbarn/chessmove-go/internal/errors"
	"github.com/lgbarn/chessmove-go/internal/render"
	"github.com/lgbarn/chessmove-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
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

	code := 0
	if *verify {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		code = runVerify(ctx, cfg, flag.Args(), os.Stdout)
		cancel()
	} else if err := play(cfg, log, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = 1
	}

	stop()
	os.Exit(code)
}

// play runs the interactive loop until quit or end of input. Each frame
// shows the outcome of the previous line.
func play(cfg *config.Config, log zerolog.Logger, in io.Reader, out io.Writer) error {
	game, err := session.New(cfg, log)
	if err != nil {
		return err
	}
	tw := render.NewTextWriter(out, render.Options{
		Colour:       cfg.Colour,
		Unicode:      cfg.Unicode,
		ShowCaptured: true,
	})

	scanner := bufio.NewScanner(in)
	notice := ""
	for {
		if err := tw.WriteFrame(game.Board(), notice); err != nil {
			return err
		}
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		outcome, err := game.Execute(session.ParseCommand(scanner.Text()))
		switch {
		case err != nil:
			notice = errors.Reason(err)
		case outcome.Quit:
			return nil
		default:
			notice = outcome.Message
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n")
	fmt.Fprintf(os.Stderr, "       chess -verify [options] game-files...\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess board. Moves are typed as e2e4.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  e2e4          Move the piece on e2 to e4\n")
	fmt.Fprintf(os.Stderr, "  save [file]   Save the game (default from -file)\n")
	fmt.Fprintf(os.Stderr, "  load [file]   Replay a saved game\n")
	fmt.Fprintf(os.Stderr, "  reset         Start again from the start position\n")
	fmt.Fprintf(os.Stderr, "  history       List the moves played\n")
	fmt.Fprintf(os.Stderr, "  quit          Leave (also q, exit)\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment: %s %s %s %s %s %s\n",
		config.EnvStartFEN, config.EnvGameFile, config.EnvLogLevel,
		config.EnvColour, config.EnvUnicode, config.EnvWorkers)
}
