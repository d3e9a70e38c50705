package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Player is one side of the game. Its piece collection is only ever changed
// by the Board it belongs to, which keeps it in step with the grid.
type Player struct {
	name   string
	colour chess.Colour
	pieces []*chess.Piece

	// king caches the player's king; it is recomputed from pieces when stale.
	king *chess.Piece
}

// newPlayer creates a player with no pieces.
func newPlayer(name string, colour chess.Colour) *Player {
	return &Player{name: name, colour: colour}
}

// Name returns the player's display name.
func (p *Player) Name() string {
	return p.name
}

// Colour returns the colour the player controls.
func (p *Player) Colour() chess.Colour {
	return p.colour
}

// Number returns the player ordinal: 0 for White, 1 for Black.
func (p *Player) Number() int {
	return int(p.colour)
}

// String returns the player name and colour.
func (p *Player) String() string {
	return p.name + " (" + p.colour.String() + ")"
}

// Pieces returns copies of the player's live pieces.
func (p *Player) Pieces() []chess.Piece {
	out := make([]chess.Piece, len(p.pieces))
	for i, pc := range p.pieces {
		out[i] = *pc
	}
	return out
}

// PieceCount returns the number of live pieces the player owns.
func (p *Player) PieceCount() int {
	return len(p.pieces)
}

// King returns a copy of the player's king, if it is on the board.
func (p *Player) King() (chess.Piece, bool) {
	k := p.kingPiece()
	if k == nil {
		return chess.Piece{}, false
	}
	return *k, true
}

// kingPiece returns the live king, refreshing the cached reference if it no
// longer points into the collection.
func (p *Player) kingPiece() *chess.Piece {
	if p.king != nil && p.owns(p.king) {
		return p.king
	}
	p.king = nil
	for _, pc := range p.pieces {
		if pc.Kind == chess.King {
			p.king = pc
			break
		}
	}
	return p.king
}

// owns reports whether pc is in the player's collection.
func (p *Player) owns(pc *chess.Piece) bool {
	for _, own := range p.pieces {
		if own == pc {
			return true
		}
	}
	return false
}

// addPiece adds pc to the collection.
func (p *Player) addPiece(pc *chess.Piece) {
	p.pieces = append(p.pieces, pc)
	if pc.Kind == chess.King && p.king == nil {
		p.king = pc
	}
}

// removePiece removes pc from the collection.
func (p *Player) removePiece(pc *chess.Piece) {
	for i, own := range p.pieces {
		if own == pc {
			p.pieces = append(p.pieces[:i], p.pieces[i+1:]...)
			break
		}
	}
	if p.king == pc {
		p.king = nil
	}
}
