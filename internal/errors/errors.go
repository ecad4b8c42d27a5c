// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidInput indicates a malformed command or move notation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidFEN indicates a malformed starting position string.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrInvalidMove indicates a move that violates the movement rules.
	ErrInvalidMove = errors.New("invalid move")

	// ErrSaveFailed indicates a failure reading or writing a game file.
	ErrSaveFailed = errors.New("failed to save game to file")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError is a legality violation. Reason is the human-readable cause
// shown to the player.
type MoveError struct {
	Reason string
}

// NewMoveError creates a MoveError with the given reason.
func NewMoveError(reason string) *MoveError {
	return &MoveError{Reason: reason}
}

// Error returns the message in the form "invalid move: <reason>".
func (e *MoveError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidMove, e.Reason)
}

// Unwrap returns ErrInvalidMove.
func (e *MoveError) Unwrap() error {
	return ErrInvalidMove
}

// FENError is a position string parse failure. Detail names the missing or
// invalid field.
type FENError struct {
	Detail string
}

// Error returns the message in the form "invalid FEN: <detail>".
func (e *FENError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidFEN, e.Detail)
}

// Unwrap returns ErrInvalidFEN.
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// SaveError wraps the low-level I/O cause of a failed save or load.
type SaveError struct {
	Path string // File involved (if known)
	Err  error  // The underlying I/O error
}

// Error returns the message including the path and the I/O cause.
func (e *SaveError) Error() string {
	var parts []string
	parts = append(parts, ErrSaveFailed.Error())
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying I/O error.
func (e *SaveError) Unwrap() error {
	return e.Err
}

// Is reports ErrSaveFailed as a match so callers can test the kind without
// losing access to the I/O cause.
func (e *SaveError) Is(target error) bool {
	return target == ErrSaveFailed
}

// GameError wraps errors with game context, including the game file, ply
// position, and move text. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	PlyNum   int    // 1-based ply where the error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "game error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Reason returns the player-facing reason of a move error, or the full error
// text for any other error.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var me *MoveError
	if errors.As(err, &me) {
		return me.Reason
	}
	return err.Error()
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
