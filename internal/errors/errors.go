// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the rule-violation taxonomy and a structured move error that keeps
// context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules. Every more
	// specific rule violation below wraps it.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPiece indicates the source square is empty.
	ErrNoPiece = fmt.Errorf("%w: no piece on source square", ErrIllegalMove)

	// ErrNotOwner indicates the source square holds an opponent's piece.
	ErrNotOwner = fmt.Errorf("%w: piece belongs to the opponent", ErrIllegalMove)

	// ErrSelfCapture indicates the destination holds one of the mover's own pieces.
	ErrSelfCapture = fmt.Errorf("%w: destination holds own piece", ErrIllegalMove)

	// ErrBadDirection indicates the piece kind cannot move that way.
	ErrBadDirection = fmt.Errorf("%w: piece cannot move that way", ErrIllegalMove)

	// ErrBlocked indicates a ray move would pass over another piece.
	ErrBlocked = fmt.Errorf("%w: path is blocked", ErrIllegalMove)

	// ErrKingExposed indicates the move would leave the mover's king in check.
	ErrKingExposed = fmt.Errorf("%w: king would be in check", ErrIllegalMove)

	// ErrOutOfBounds indicates a square outside the board.
	ErrOutOfBounds = fmt.Errorf("%w: square is off the board", ErrIllegalMove)

	// ErrInvalidCoordinate indicates a malformed coordinate token.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrOccupied indicates a setup placement onto an occupied square.
	ErrOccupied = errors.New("square is occupied")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRecordMismatch indicates a game record that does not replay to the
	// result it claims.
	ErrRecordMismatch = errors.New("game record does not match replay")
)

// MoveError wraps a rule violation with the context of the rejected move.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Player string // Name of the player who attempted the move
	From   string // Source square, e.g. "E2"
	To     string // Destination square, e.g. "E4"
	Ply    int    // 1-based ply the move was attempted at (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Player != "" {
		parts = append(parts, e.Player)
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// IsIllegalMove reports whether err is a recoverable rule violation or a
// malformed coordinate, i.e. something the player should simply retry.
func IsIllegalMove(err error) bool {
	return errors.Is(err, ErrIllegalMove) || errors.Is(err, ErrInvalidCoordinate)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrap(err, context)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrapf(err, format, args...)
}
