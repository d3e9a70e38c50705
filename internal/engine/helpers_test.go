package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// pieceIs reports whether the square holds the given kind and colour.
func pieceIs(b *Board, square string, kind chess.PieceKind, colour chess.Colour) bool {
	pc, ok := b.PieceAt(chess.MustParsePosition(square))
	return ok && pc.Kind == kind && pc.Owner == colour
}

// assertConsistent fails if the grid and the players' collections disagree.
func assertConsistent(t *testing.T, b *Board) {
	t.Helper()
	onGrid := 0
	for file := 0; file < chess.Width; file++ {
		for rank := 0; rank < chess.Height; rank++ {
			pc := b.squares[file][rank]
			if pc == nil {
				continue
			}
			onGrid++
			if pc.Pos != chess.Pos(file, rank) {
				t.Errorf("piece on %v thinks it is on %v", chess.Pos(file, rank), pc.Pos)
			}
			if !b.players[pc.Owner].owns(pc) {
				t.Errorf("piece %v on grid missing from %v collection", pc, pc.Owner)
			}
		}
	}
	inCollections := 0
	for _, p := range b.players {
		for _, pc := range p.pieces {
			inCollections++
			if b.at(pc.Pos) != pc {
				t.Errorf("%v collection holds %v which is not on the grid", p.colour, pc)
			}
			if pc.Owner != p.colour {
				t.Errorf("%v collection holds %v piece %v", p.colour, pc.Owner, pc)
			}
		}
	}
	if onGrid != inCollections {
		t.Errorf("grid has %d pieces, collections have %d", onGrid, inCollections)
	}
}

// mustMove applies a move that the test expects to be legal.
func mustMove(t *testing.T, b *Board, from, to string) *MoveRecord {
	t.Helper()
	rec, err := b.MovePieceByPosition(b.Player(b.ToMove), chess.MustParsePosition(from), chess.MustParsePosition(to))
	if err != nil {
		t.Fatalf("move %s-%s: %v", from, to, err)
	}
	return rec
}
