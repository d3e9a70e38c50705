// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Default player names used when none are given.
const (
	DefaultWhiteName = "White"
	DefaultBlackName = "Black"
)

// Board represents a chess board and the two players whose pieces stand on it.
// The grid is the single source of truth for what occupies each square; every
// mutation updates the grid and the owning player's collection together.
type Board struct {
	// squares[file][rank], nil for an empty square.
	squares [chess.Width][chess.Height]*chess.Piece

	players [chess.NumPlayers]*Player

	// Who has the next move.
	ToMove chess.Colour
}

// NewBoard creates an empty board for the two named players.
func NewBoard(white, black string) *Board {
	if white == "" {
		white = DefaultWhiteName
	}
	if black == "" {
		black = DefaultBlackName
	}
	b := &Board{ToMove: chess.White}
	b.players[chess.White] = newPlayer(white, chess.White)
	b.players[chess.Black] = newPlayer(black, chess.Black)
	return b
}

// SetNames renames the players. Empty names leave the current name in place.
func (b *Board) SetNames(white, black string) {
	if white != "" {
		b.players[chess.White].name = white
	}
	if black != "" {
		b.players[chess.Black].name = black
	}
}

// Player returns the player controlling colour.
func (b *Board) Player(colour chess.Colour) *Player {
	return b.players[colour]
}

// Opponent returns the player facing colour.
func (b *Board) Opponent(colour chess.Colour) *Player {
	return b.players[colour.Opposite()]
}

// PieceAt returns a copy of the piece on pos, if any.
func (b *Board) PieceAt(pos chess.Position) (chess.Piece, bool) {
	pc := b.at(pos)
	if pc == nil {
		return chess.Piece{}, false
	}
	return *pc, true
}

// IsEmpty reports whether pos is an empty on-board square.
func (b *Board) IsEmpty(pos chess.Position) bool {
	return !pos.OutsideOfBoard() && b.at(pos) == nil
}

// Place puts a new piece on an empty square during setup.
func (b *Board) Place(kind chess.PieceKind, colour chess.Colour, pos chess.Position) error {
	if pos.OutsideOfBoard() {
		return fmt.Errorf("place %v on %v: %w", kind, pos, errors.ErrOutOfBounds)
	}
	if kind <= chess.NoPiece || kind >= chess.NumPieceKinds || !colour.Valid() {
		return fmt.Errorf("place %v %v: unknown piece", colour, kind)
	}
	if b.at(pos) != nil {
		return fmt.Errorf("place %v on %v: %w", kind, pos, errors.ErrOccupied)
	}
	pc := &chess.Piece{Kind: kind, Owner: colour, Pos: pos}
	b.squares[pos.File][pos.Rank] = pc
	b.players[colour].addPiece(pc)
	return nil
}

// RemovePiece takes the piece on pos off the board during setup and returns it.
func (b *Board) RemovePiece(pos chess.Position) (chess.Piece, bool) {
	pc := b.at(pos)
	if pc == nil {
		return chess.Piece{}, false
	}
	b.squares[pos.File][pos.Rank] = nil
	b.players[pc.Owner].removePiece(pc)
	return *pc, true
}

// Clone creates a deep copy of the board, including fresh players and pieces.
func (b *Board) Clone() *Board {
	c := &Board{ToMove: b.ToMove}
	for colour, p := range b.players {
		c.players[colour] = newPlayer(p.name, p.colour)
	}
	for file := 0; file < chess.Width; file++ {
		for rank := 0; rank < chess.Height; rank++ {
			if pc := b.squares[file][rank]; pc != nil {
				cp := *pc
				c.squares[file][rank] = &cp
				c.players[cp.Owner].addPiece(&cp)
			}
		}
	}
	return c
}

// Snapshot returns a read-only copy of the board contents.
func (b *Board) Snapshot() chess.Snapshot {
	s := chess.Snapshot{ToMove: b.ToMove}
	for file := 0; file < chess.Width; file++ {
		for rank := 0; rank < chess.Height; rank++ {
			if pc := b.squares[file][rank]; pc != nil {
				s.Squares[file][rank] = *pc
			} else {
				s.Squares[file][rank] = chess.Piece{Pos: chess.Pos(file, rank)}
			}
		}
	}
	return s
}

// at returns the live piece on pos, or nil for empty and off-board squares.
func (b *Board) at(pos chess.Position) *chess.Piece {
	if pos.OutsideOfBoard() {
		return nil
	}
	return b.squares[pos.File][pos.Rank]
}

// allEmpty reports whether every listed square is on the board and empty.
func (b *Board) allEmpty(squares []chess.Position) bool {
	for _, sq := range squares {
		if !b.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// canReach runs the geometric test for pc against dest and then verifies that
// nothing stands on the squares it would cross. Occupancy of dest itself is
// the caller's concern.
func (b *Board) canReach(pc *chess.Piece, dest chess.Position, destOccupied bool) bool {
	crossed, ok := pc.CanMoveTo(dest, destOccupied, nil)
	return ok && b.allEmpty(crossed)
}

// applyMove moves the piece on src to dest, capturing whatever stands there.
// It performs no legality checks and returns the captured piece, if any.
func (b *Board) applyMove(src, dest chess.Position) *chess.Piece {
	pc := b.at(src)
	captured := b.at(dest)
	if captured != nil {
		b.players[captured.Owner].removePiece(captured)
	}
	b.squares[src.File][src.Rank] = nil
	pc.Pos = dest
	b.squares[dest.File][dest.Rank] = pc
	return captured
}
