package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *Board, colour chess.Colour) bool {
	found := false
	forEachLegalMove(board, colour, func(chess.Move) bool {
		found = true
		return false
	})
	return found
}

// LegalMoves returns every legal move for the given colour, ordered by source
// square and then destination square (file-major).
func LegalMoves(board *Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	forEachLegalMove(board, colour, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// forEachLegalMove tries every (piece, destination) pair for colour through
// the full move validation, calling fn for each legal one until fn returns
// false.
func forEachLegalMove(board *Board, colour chess.Colour, fn func(chess.Move) bool) {
	player := board.players[colour]
	for file := 0; file < chess.Width; file++ {
		for rank := 0; rank < chess.Height; rank++ {
			pc := board.squares[file][rank]
			if pc == nil || pc.Owner != colour {
				continue
			}
			if !tryDestinations(board, player, pc.Pos, fn) {
				return
			}
		}
	}
}

// tryDestinations checks every square as a destination for the piece on src.
// It returns false once fn asks to stop.
func tryDestinations(board *Board, player *Player, src chess.Position, fn func(chess.Move) bool) bool {
	for file := 0; file < chess.Width; file++ {
		for rank := 0; rank < chess.Height; rank++ {
			dest := chess.Pos(file, rank)
			if board.simulate(player, src, dest) != nil {
				continue
			}
			if !fn(chess.Move{From: src, To: dest}) {
				return false
			}
		}
	}
	return true
}
