package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessmove-go/internal/chess"
	chesserrors "github.com/lgbarn/chessmove-go/internal/errors"
)

func TestPlayMove_KingPawn(t *testing.T) {
	board := NewInitialBoard()
	mustPlay(t, board, "e2e4")

	if board.Occupied(chess.Sq(4, 1)) {
		t.Errorf("e2 still occupied")
	}
	want := chess.W(chess.Pawn)
	want.Moves = 1
	if got := board.At(4, 3); got != want {
		t.Errorf("e4 = %+v, want %+v", got, want)
	}
	if board.ToMove != chess.Black {
		t.Errorf("ToMove = %v, want Black", board.ToMove)
	}
	if !board.IsEnPassant(chess.Sq(4, 2)) {
		t.Errorf("en passant = %v %v, want e3", board.EnPassant, board.EPSquare)
	}
	if board.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0", board.HalfmoveClock)
	}
	if board.MoveNumber != 1 {
		t.Errorf("MoveNumber = %d, want 1", board.MoveNumber)
	}
	if diff := cmp.Diff([]string{"e2e4"}, board.History); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
}

func TestPlayMove_Clocks(t *testing.T) {
	board := NewInitialBoard()

	steps := []struct {
		move       string
		halfmove   uint
		moveNumber uint
		toMove     chess.Colour
	}{
		{"g1f3", 1, 1, chess.Black},
		{"g8f6", 2, 2, chess.White},
		{"b1c3", 3, 2, chess.Black},
		{"e7e5", 0, 3, chess.White},
		{"f3e5", 0, 3, chess.Black},
		{"f6g8", 1, 4, chess.White},
	}

	for _, step := range steps {
		mustPlay(t, board, step.move)
		if board.HalfmoveClock != step.halfmove {
			t.Errorf("after %s HalfmoveClock = %d, want %d", step.move, board.HalfmoveClock, step.halfmove)
		}
		if board.MoveNumber != step.moveNumber {
			t.Errorf("after %s MoveNumber = %d, want %d", step.move, board.MoveNumber, step.moveNumber)
		}
		if board.ToMove != step.toMove {
			t.Errorf("after %s ToMove = %v, want %v", step.move, board.ToMove, step.toMove)
		}
	}

	if diff := cmp.Diff([]chess.Piece{{Class: chess.Pawn, Colour: chess.Black, Moves: 1}}, board.Captured); diff != "" {
		t.Errorf("Captured mismatch (-want +got):\n%s", diff)
	}
}

func TestPlayMove_EnPassantClearedByOtherMoves(t *testing.T) {
	board := NewInitialBoard()
	mustPlay(t, board, "e2e4")
	if !board.EnPassant {
		t.Fatal("EnPassant = false after double advance")
	}
	mustPlay(t, board, "g8f6")
	if board.EnPassant {
		t.Errorf("EnPassant = true after knight move, want false")
	}
	mustPlay(t, board, "d2d3")
	if board.EnPassant {
		t.Errorf("EnPassant = true after single advance, want false")
	}
}

func TestPlayMove_EnPassantCapture(t *testing.T) {
	tests := []struct {
		name    string
		moves   []string
		victim  chess.Square
		capture chess.Square
		colour  chess.Colour
	}{
		{
			name:    "white takes",
			moves:   []string{"e2e4", "a7a6", "e4e5", "d7d5", "e5d6"},
			victim:  chess.Sq(3, 4),
			capture: chess.Sq(3, 5),
			colour:  chess.White,
		},
		{
			name:    "black takes",
			moves:   []string{"a2a3", "d7d5", "a3a4", "d5d4", "e2e4", "d4e3"},
			victim:  chess.Sq(4, 3),
			capture: chess.Sq(4, 2),
			colour:  chess.Black,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewInitialBoard()
			mustPlay(t, board, tt.moves...)

			if board.Occupied(tt.victim) {
				t.Errorf("victim square %v still occupied", tt.victim)
			}
			if got := board.Get(tt.capture); !got.Is(chess.Pawn, tt.colour) {
				t.Errorf("%v = %v, want %v Pawn", tt.capture, got, tt.colour)
			}
			if len(board.Captured) != 1 || !board.Captured[0].Is(chess.Pawn, tt.colour.Opposite()) {
				t.Errorf("Captured = %+v, want one %v pawn", board.Captured, tt.colour.Opposite())
			}
			if board.HalfmoveClock != 0 {
				t.Errorf("HalfmoveClock = %d, want 0", board.HalfmoveClock)
			}
			if board.EnPassant {
				t.Errorf("EnPassant still set after capture")
			}
		})
	}
}

func TestPlayMove_DiagonalCaptureDoesNotSetEnPassant(t *testing.T) {
	board := NewInitialBoard()
	mustPlay(t, board, "e2e4", "d7d5", "e4d5")
	if board.EnPassant {
		t.Errorf("EnPassant = %v after capture, want cleared", board.EPSquare)
	}
}

func TestPlayMove_Castling(t *testing.T) {
	t.Run("kingside sequence", func(t *testing.T) {
		board := NewInitialBoard()
		mustPlay(t, board, "e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "g8f6", "e1g1")

		if got := board.At(6, 0); !got.Is(chess.King, chess.White) {
			t.Errorf("g1 = %v, want White King", got)
		}
		rook := board.At(5, 0)
		if !rook.Is(chess.Rook, chess.White) {
			t.Errorf("f1 = %v, want White Rook", rook)
		}
		if rook.Moves != 0 {
			t.Errorf("castled rook Moves = %d, want 0", rook.Moves)
		}
		if board.Occupied(chess.Sq(4, 0)) || board.Occupied(chess.Sq(7, 0)) {
			t.Errorf("e1 or h1 still occupied")
		}
		if board.HalfmoveClock != 5 {
			t.Errorf("HalfmoveClock = %d, want 5", board.HalfmoveClock)
		}
		if board.ToMove != chess.Black {
			t.Errorf("ToMove = %v, want Black", board.ToMove)
		}
		if !board.WKingCastle {
			t.Errorf("castling flags changed by play")
		}
	})

	tests := []struct {
		name       string
		fen        string
		move       string
		kingTo     chess.Square
		rookTo     chess.Square
		rookFrom   chess.Square
		wantColour chess.Colour
	}{
		{"white queenside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", chess.Sq(2, 0), chess.Sq(3, 0), chess.Sq(0, 0), chess.White},
		{"black kingside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8", chess.Sq(6, 7), chess.Sq(5, 7), chess.Sq(7, 7), chess.Black},
		{"black queenside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", chess.Sq(2, 7), chess.Sq(3, 7), chess.Sq(0, 7), chess.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			mustPlay(t, board, tt.move)

			if got := board.Get(tt.kingTo); !got.Is(chess.King, tt.wantColour) {
				t.Errorf("%v = %v, want King", tt.kingTo, got)
			}
			if got := board.Get(tt.rookTo); !got.Is(chess.Rook, tt.wantColour) {
				t.Errorf("%v = %v, want Rook", tt.rookTo, got)
			}
			if board.Occupied(tt.rookFrom) {
				t.Errorf("rook origin %v still occupied", tt.rookFrom)
			}
		})
	}
}

func TestPlayMove_KingStepDoesNotMoveRook(t *testing.T) {
	board := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mustPlay(t, board, "e1f1")
	if got := board.At(7, 0); !got.Is(chess.Rook, chess.White) {
		t.Errorf("h1 = %v, want White Rook", got)
	}
}

func TestPlayMove_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		setup  []string
		move   string
		target error
		reason string
	}{
		{"opponent piece", nil, "e7e5", chesserrors.ErrInvalidMove, ReasonNotYourPiece},
		{"empty square", nil, "e3e4", chesserrors.ErrInvalidMove, ReasonNoPiece},
		{"pawn diagonal", []string{"e2e4", "d7d5"}, "e4f5", chesserrors.ErrInvalidMove, ReasonPawnDiagonal},
		{"out of bounds", nil, "e2e9", chesserrors.ErrInvalidMove, "Move is out of bounds"},
		{"malformed", nil, "e2-e4", chesserrors.ErrInvalidInput, ""},
		{"empty text", nil, "   ", chesserrors.ErrInvalidInput, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewInitialBoard()
			mustPlay(t, board, tt.setup...)
			before := board.Copy()

			err := PlayMove(board, tt.move)
			if !errors.Is(err, tt.target) {
				t.Fatalf("PlayMove(%q) error = %v, want %v", tt.move, err, tt.target)
			}
			if tt.reason != "" {
				if got := chesserrors.Reason(err); got != tt.reason {
					t.Errorf("reason = %q, want %q", got, tt.reason)
				}
			}
			if diff := cmp.Diff(before, board); diff != "" {
				t.Errorf("board changed after rejected move (-before +after):\n%s", diff)
			}
		})
	}
}

func TestPlayMove_NormalisesHistory(t *testing.T) {
	board := NewInitialBoard()
	mustPlay(t, board, " E2E4 ", "e7e5\n")
	if diff := cmp.Diff([]string{"e2e4", "e7e5"}, board.History); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
}

func TestPlayMove_MoveCounters(t *testing.T) {
	board := NewInitialBoard()
	mustPlay(t, board, "g1f3", "g8f6", "f3g1", "f6g8", "g1f3")
	if got := board.At(5, 2); got.Moves != 3 {
		t.Errorf("knight Moves = %d, want 3", got.Moves)
	}
	if got := board.At(6, 7); got.Moves != 2 {
		t.Errorf("black knight Moves = %d, want 2", got.Moves)
	}
}

func TestIsCastling(t *testing.T) {
	tests := []struct {
		name  string
		piece chess.Piece
		move  chess.Move
		want  bool
	}{
		{"kingside", chess.NewPiece(chess.King, chess.White), chess.NewMove(4, 0, 6, 0), true},
		{"queenside", chess.NewPiece(chess.King, chess.Black), chess.NewMove(4, 7, 2, 7), true},
		{"single step onto g file", chess.NewPiece(chess.King, chess.White), chess.NewMove(5, 0, 6, 0), false},
		{"rook two files", chess.NewPiece(chess.Rook, chess.White), chess.NewMove(7, 0, 5, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCastling(tt.piece, tt.move); got != tt.want {
				t.Errorf("IsCastling(%v, %v) = %v, want %v", tt.piece, tt.move, got, tt.want)
			}
		})
	}
}

func TestPlayMove_KingStepLeavesRook(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/8/8/8/8/5K1R w - - 0 1")
	mustPlay(t, board, "f1g1")

	if got := board.At(6, 0); !got.Is(chess.King, chess.White) {
		t.Errorf("g1 = %v, want White King", got)
	}
	if got := board.At(7, 0); !got.Is(chess.Rook, chess.White) || got.Moves != 0 {
		t.Errorf("h1 = %+v, want unmoved White Rook", got)
	}
	if board.Occupied(chess.Sq(5, 0)) {
		t.Errorf("f1 occupied after a plain king step")
	}
}
