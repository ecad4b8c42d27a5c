// Package session holds one game in progress and the commands that act on
// it. A Session is not safe for concurrent use.
package session

import (
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessmove-go/internal/chess"
	"github.com/lgbarn/chessmove-go/internal/config"
	"github.com/lgbarn/chessmove-go/internal/engine"
	"github.com/lgbarn/chessmove-go/internal/errors"
	"github.com/lgbarn/chessmove-go/internal/gamefile"
)

// Session is a single game played from a configured start position.
type Session struct {
	board    *chess.Board
	startFEN string
	gameFile string
	log      zerolog.Logger
}

// New starts a session at cfg's start position.
func New(cfg *config.Config, log zerolog.Logger) (*Session, error) {
	board, err := engine.NewBoardFromFEN(cfg.StartFEN)
	if err != nil {
		return nil, err
	}
	gameFile := cfg.GameFile
	if gameFile == "" {
		gameFile = config.DefaultGameFile
	}
	return &Session{
		board:    board,
		startFEN: cfg.StartFEN,
		gameFile: gameFile,
		log:      log,
	}, nil
}

// Board returns the current board. Callers must not modify it.
func (s *Session) Board() *chess.Board {
	return s.board
}

// History returns a copy of the accepted moves.
func (s *Session) History() []string {
	return append([]string(nil), s.board.History...)
}

// Play attempts one move. A rejected move leaves the game unchanged.
func (s *Session) Play(text string) error {
	if err := engine.PlayMove(s.board, text); err != nil {
		s.log.Debug().Str("move", text).Str("reason", errors.Reason(err)).Msg("move rejected")
		return err
	}
	s.log.Debug().
		Str("move", text).
		Int("ply", s.board.Plies()).
		Str("to_move", s.board.ToMove.String()).
		Msg("move accepted")
	return nil
}

// Save writes the game to path, or to the configured game file when path
// is empty.
func (s *Session) Save(path string) (bytesize.ByteSize, error) {
	path = s.resolve(path)
	size, err := gamefile.SaveFile(path, s.board)
	if err != nil {
		s.log.Error().Err(err).Str("file", path).Msg("save failed")
		return 0, err
	}
	s.log.Info().Str("file", path).Str("size", size.String()).Int("plies", s.board.Plies()).Msg("game saved")
	return size, nil
}

// Load replaces the game with the one stored at path, or at the configured
// game file when path is empty. The replay happens on a fresh board, so on
// any error the current game is kept as it was.
func (s *Session) Load(path string) (bytesize.ByteSize, error) {
	path = s.resolve(path)
	board, size, err := gamefile.LoadFile(path, s.startFEN)
	if err != nil {
		s.log.Error().Err(err).Str("file", path).Msg("load failed")
		return 0, err
	}
	s.board = board
	s.log.Info().Str("file", path).Str("size", size.String()).Int("plies", board.Plies()).Msg("game loaded")
	return size, nil
}

// Reset discards the game and returns to the start position.
func (s *Session) Reset() error {
	board, err := engine.NewBoardFromFEN(s.startFEN)
	if err != nil {
		return err
	}
	s.board = board
	s.log.Info().Msg("game reset")
	return nil
}

// Outcome describes what the caller should do after a command.
type Outcome struct {
	Quit    bool
	Message string // informational text for the player, may be empty
}

// Execute runs a parsed command.
func (s *Session) Execute(cmd Command) (Outcome, error) {
	switch cmd.Kind {
	case CmdNone:
		return Outcome{}, nil
	case CmdQuit:
		return Outcome{Quit: true}, nil
	case CmdSave:
		size, err := s.Save(cmd.Arg)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Message: "saved " + s.resolve(cmd.Arg) + " (" + size.String() + ")"}, nil
	case CmdLoad:
		size, err := s.Load(cmd.Arg)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Message: "loaded " + s.resolve(cmd.Arg) + " (" + size.String() + ")"}, nil
	case CmdReset:
		return Outcome{}, s.Reset()
	case CmdHistory:
		history := s.History()
		if len(history) == 0 {
			return Outcome{Message: "no moves yet"}, nil
		}
		return Outcome{Message: strings.Join(history, " ")}, nil
	default:
		return Outcome{}, s.Play(cmd.Arg)
	}
}

func (s *Session) resolve(path string) string {
	if path == "" {
		return s.gameFile
	}
	return path
}
