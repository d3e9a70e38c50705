package engine

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// oracleFENs are positions with no castling rights, no en passant target and
// no pawn one step from promotion, so both move generators play the same game.
var oracleFENs = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1",
	"8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
	"4k3/8/8/8/8/8/3q4/4K3 w - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
	"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3",
	"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
}

// TestLegalMoves_MatchesOracle compares the legal move list and the game
// status against an independent move generator.
func TestLegalMoves_MatchesOracle(t *testing.T) {
	for _, fen := range oracleFENs {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			opt, err := nchess.FEN(fen)
			if err != nil {
				t.Fatalf("oracle FEN: %v", err)
			}
			game := nchess.NewGame(opt)

			var want []string
			for _, m := range game.ValidMoves() {
				want = append(want, strings.ToUpper(m.S1().String()+"-"+m.S2().String()))
			}
			sort.Strings(want)

			board := MustBoardFromFEN(fen)
			var got []string
			for _, m := range LegalMoves(board, board.ToMove) {
				got = append(got, m.String())
			}
			sort.Strings(got)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("legal moves differ (-oracle +engine):\n%s", diff)
			}

			wantStatus := chess.Continue
			switch game.Position().Status() {
			case nchess.Checkmate:
				wantStatus = chess.Checkmate
			case nchess.Stalemate:
				wantStatus = chess.Stalemate
			}
			if got := Status(board, board.ToMove); got != wantStatus {
				t.Errorf("Status() = %v; oracle says %v", got, wantStatus)
			}
		})
	}
}
