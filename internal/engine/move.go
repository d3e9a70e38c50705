package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveRecord describes a committed move.
type MoveRecord struct {
	Colour   chess.Colour
	Kind     chess.PieceKind
	From     chess.Position
	To       chess.Position
	Captured chess.PieceKind // NoPiece when nothing was taken
	Check    bool            // the opponent's king is attacked after the move
}

// Move returns the coordinate pair of the record.
func (r MoveRecord) Move() chess.Move {
	return chess.Move{From: r.From, To: r.To}
}

// MovePieceByPosition validates the move of player's piece on src to dest and
// applies it when legal. A nil error means the move was committed. On any
// error the board, both players and every piece are left exactly as they were.
//
// The move is first played on a clone of the board; only if the mover's king
// is safe there is the same change applied to b.
func (b *Board) MovePieceByPosition(player *Player, src, dest chess.Position) (*MoveRecord, error) {
	if err := b.simulate(player, src, dest); err != nil {
		return nil, err
	}

	colour := player.Colour()
	pc := b.at(src)
	record := &MoveRecord{
		Colour:   colour,
		Kind:     pc.Kind,
		From:     src,
		To:       dest,
		Captured: chess.NoPiece,
	}
	if captured := b.applyMove(src, dest); captured != nil {
		record.Captured = captured.Kind
	}
	b.ToMove = colour.Opposite()
	record.Check = IsInCheck(b, colour.Opposite())
	return record, nil
}

// CheckMove reports whether MovePieceByPosition would accept the move,
// without changing the board.
func (b *Board) CheckMove(player *Player, src, dest chess.Position) error {
	return b.simulate(player, src, dest)
}

// simulate validates the move, plays it on a clone of the board and checks
// the mover's king there. b itself is never modified.
func (b *Board) simulate(player *Player, src, dest chess.Position) error {
	if player == nil {
		return errors.ErrNotOwner
	}
	colour := player.Colour()
	if err := b.validate(colour, src, dest); err != nil {
		return moveError(player, src, dest, err)
	}

	sim := b.Clone()
	sim.applyMove(src, dest)
	if IsInCheck(sim, colour) {
		return moveError(player, src, dest, errors.ErrKingExposed)
	}
	return nil
}

// validate runs every check that does not need the move to be played:
// ownership, self-capture, piece geometry and blocking.
func (b *Board) validate(colour chess.Colour, src, dest chess.Position) error {
	if src.OutsideOfBoard() || dest.OutsideOfBoard() {
		return errors.ErrOutOfBounds
	}

	pc := b.at(src)
	if pc == nil {
		return errors.ErrNoPiece
	}
	if pc.Owner != colour {
		return errors.ErrNotOwner
	}

	destOccupied := false
	if target := b.at(dest); target != nil {
		if target.Owner == colour {
			return errors.ErrSelfCapture
		}
		destOccupied = true
	}

	crossed, ok := pc.CanMoveTo(dest, destOccupied, nil)
	if !ok {
		return errors.ErrBadDirection
	}
	if !b.allEmpty(crossed) {
		return errors.ErrBlocked
	}
	return nil
}

// moveError attaches the move context to a rule violation.
func moveError(player *Player, src, dest chess.Position, err error) error {
	return &errors.MoveError{
		Err:    err,
		Player: player.Name(),
		From:   src.String(),
		To:     dest.String(),
	}
}
