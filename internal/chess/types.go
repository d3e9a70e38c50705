// Package chess provides the core chess value types: colours, piece kinds,
// board coordinates, directions and the per-piece movement rules.
package chess

// Colour represents the colour of a piece or player.
// The value doubles as the player ordinal: White (0) moves first.
type Colour int

const (
	White Colour = iota
	Black
)

// NumPlayers is the number of sides in a game.
const NumPlayers = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Valid reports whether c is White or Black.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the full name of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a piece kind.
// It returns NoPiece for anything else.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPiece
	}
}

// Status is the state of the game for the side to move. It is computed
// fresh from the board each round and never stored.
type Status int

const (
	Continue Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Continue"
	}
}

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool {
	return s == Checkmate || s == Stalemate
}

// Board dimensions for standard chess.
const (
	Width  = 8
	Height = 8

	FileBase = 'A'
	RankBase = '1'
)
