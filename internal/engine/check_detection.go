package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A side without a king is never in check.
func IsInCheck(board *Board, colour chess.Colour) bool {
	king := board.players[colour].kingPiece()
	if king == nil {
		return false
	}
	return isSquareAttacked(board, king.Pos, colour.Opposite())
}

// isSquareAttacked returns true if some piece of byColour could capture on
// target: its geometry allows the move and every square it crosses is empty.
func isSquareAttacked(board *Board, target chess.Position, byColour chess.Colour) bool {
	for _, pc := range board.players[byColour].pieces {
		if board.canReach(pc, target, true) {
			return true
		}
	}
	return false
}

// Attackers returns the pieces of byColour that attack target.
func Attackers(board *Board, target chess.Position, byColour chess.Colour) []chess.Piece {
	var out []chess.Piece
	for _, pc := range board.players[byColour].pieces {
		if board.canReach(pc, target, true) {
			out = append(out, *pc)
		}
	}
	return out
}
