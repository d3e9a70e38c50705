package chess

// Snapshot is a read-only copy of a board's contents, indexed [file][rank].
// Renderers and tests receive snapshots so they can never mutate a live board.
type Snapshot struct {
	Squares [Width][Height]Piece
	ToMove  Colour
}

// At returns the piece on pos, or an empty Piece for empty or off-board squares.
func (s Snapshot) At(pos Position) Piece {
	if pos.OutsideOfBoard() {
		return Piece{Pos: pos}
	}
	return s.Squares[pos.File][pos.Rank]
}

// Count returns how many pieces of the given colour are on the board.
func (s Snapshot) Count(colour Colour) int {
	n := 0
	for file := 0; file < Width; file++ {
		for rank := 0; rank < Height; rank++ {
			if sq := s.Squares[file][rank]; !sq.IsEmpty() && sq.Owner == colour {
				n++
			}
		}
	}
	return n
}
