package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string. Only the piece placement
// and side-to-move fields are used; castling, en passant and clock fields
// are accepted and ignored. Each side must have exactly one king and the
// side that just moved must not be in check, so a king can never be taken.
func NewBoardFromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := NewBoard(DefaultWhiteName, DefaultBlackName)

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	if err := validateKings(board); err != nil {
		return nil, err
	}

	return board, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
// It is intended for fixed positions in tests.
func MustBoardFromFEN(fen string) *Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard(white, black string) *Board {
	board := MustBoardFromFEN(InitialFEN)
	board.SetNames(white, black)
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.Height {
		return fmt.Errorf("%d ranks, want %d: %w", len(ranks), chess.Height, errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.Height - 1 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoPiece {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.Width {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			if err := board.Place(kind, colour, chess.Pos(file, rank)); err != nil {
				return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
			}
			file++
		}
		if file != chess.Width {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// validateKings rejects positions the move rules could never reach.
func validateKings(board *Board) error {
	for _, p := range board.players {
		kings := 0
		for _, pc := range p.pieces {
			if pc.Kind == chess.King {
				kings++
			}
		}
		if kings != 1 {
			return fmt.Errorf("%s has %d kings, want 1: %w", p.colour, kings, errors.ErrInvalidFEN)
		}
	}
	if waiting := board.ToMove.Opposite(); IsInCheck(board, waiting) {
		return fmt.Errorf("%s is in check but not to move: %w", waiting, errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string. Castling and en passant are
// not part of this rule set, so those fields are always "-".
func BoardToFEN(board *Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *Board) {
	for rank := chess.Height - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.Width; file++ {
			pc := board.squares[file][rank]
			if pc == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pc.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
