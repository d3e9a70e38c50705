package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status returns the game status for colour as the side to move: Continue if
// it has a legal move, otherwise Checkmate when its king is in check and
// Stalemate when it is not.
func Status(board *Board, colour chess.Colour) chess.Status {
	if HasLegalMoves(board, colour) {
		return chess.Continue
	}
	if IsInCheck(board, colour) {
		return chess.Checkmate
	}
	return chess.Stalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
