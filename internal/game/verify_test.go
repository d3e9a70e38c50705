package game

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/input"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// playedRecord plays moves from fen and returns the resulting record.
func playedRecord(t *testing.T, fen string, moves ...string) *output.JSONGame {
	t.Helper()
	g, _, _ := newTestGame(t, fen, input.MustParseScript(moves...))
	if _, err := g.Play(); err != nil {
		t.Fatal(err)
	}
	return g.Record()
}

func TestVerify_ConsistentRecord(t *testing.T) {
	record := playedRecord(t, engine.InitialFEN, "F2F3", "E7E5", "G2G4", "D8H4")

	outcome, err := Verify(record)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, outcome.State, Terminal)
	testutil.AssertEqual(t, outcome.Plies, 4)
	testutil.AssertEqual(t, outcome.Winner.Name(), "Bob")
}

func TestVerify_Mismatches(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(*output.JSONGame)
	}{
		{
			name:   "wrong result",
			tamper: func(r *output.JSONGame) { r.Result = output.WhiteWins },
		},
		{
			name:   "wrong final position",
			tamper: func(r *output.JSONGame) { r.FinalFEN = engine.InitialFEN },
		},
		{
			name:   "wrong ply count",
			tamper: func(r *output.JSONGame) { r.PlyCount = 7 },
		},
		{
			name:   "wrong piece",
			tamper: func(r *output.JSONGame) { r.Moves[3].Piece = "Bishop" },
		},
		{
			name:   "missing check flag",
			tamper: func(r *output.JSONGame) { r.Moves[3].Check = false },
		},
		{
			name:   "invented capture",
			tamper: func(r *output.JSONGame) { r.Moves[0].Captured = "Pawn" },
		},
		{
			name:   "illegal move",
			tamper: func(r *output.JSONGame) { r.Moves[1].From, r.Moves[1].To = "E7", "E4" },
		},
		{
			name: "moves after mate",
			tamper: func(r *output.JSONGame) {
				r.Moves = append(r.Moves, output.JSONMove{From: "A2", To: "A3"})
				r.PlyCount = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := playedRecord(t, engine.InitialFEN, "F2F3", "E7E5", "G2G4", "D8H4")
			tt.tamper(record)
			_, err := Verify(record)
			testutil.AssertErrorIs(t, err, chesserrors.ErrRecordMismatch)
		})
	}
}

func TestVerify_IllegalMoveKeepsRule(t *testing.T) {
	record := playedRecord(t, engine.InitialFEN, "E2E4", "E7E5")
	record.Moves[0].To = "E5"

	_, err := Verify(record)
	testutil.AssertErrorIs(t, err, chesserrors.ErrRecordMismatch)
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertErrorIs(t, err, chesserrors.ErrBadDirection)
	testutil.AssertContains(t, err.Error(), "E2-E5")
}

func TestReplay_BadRecord(t *testing.T) {
	_, _, err := Replay(&output.JSONGame{InitialFEN: "nonsense"})
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)

	_, _, err = Replay(&output.JSONGame{
		InitialFEN: engine.InitialFEN,
		Moves:      []output.JSONMove{{From: "E2", To: "E"}},
	})
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidCoordinate)
}
