package game

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/input"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// Replay plays the moves of a game record from its initial position and
// returns the finished game. It renders nothing and logs nothing, so it is
// safe to call for independent records from several goroutines.
func Replay(record *output.JSONGame) (*Game, Outcome, error) {
	board, err := engine.NewBoardFromFEN(record.InitialFEN)
	if err != nil {
		return nil, Outcome{}, errors.Wrap(err, "initial position")
	}
	board.SetNames(record.White, record.Black)

	moves, err := record.ToMoves()
	if err != nil {
		return nil, Outcome{}, errors.Wrap(err, "recorded moves")
	}

	g := New(board, input.NewScript(moves...), nil, nil)
	outcome, err := g.Play()
	return g, outcome, err
}

// Verify replays a game record and checks that every move is legal, that
// each move moved, captured and checked what the record says, and that the
// replay reaches the plies, result and final position the record claims.
// Any disagreement is reported as errors.ErrRecordMismatch; an illegal
// move also wraps the rule it broke.
func Verify(record *output.JSONGame) (Outcome, error) {
	g, outcome, err := Replay(record)
	if err != nil {
		return outcome, err
	}

	switch {
	case g.Rejected() > 0:
		return outcome, fmt.Errorf("%d recorded moves are illegal: %w: %w",
			g.Rejected(), errors.ErrRecordMismatch, g.firstReject)
	case outcome.Plies != len(record.Moves):
		return outcome, fmt.Errorf("game ended after %d of %d recorded moves: %w",
			outcome.Plies, len(record.Moves), errors.ErrRecordMismatch)
	case record.PlyCount != 0 && record.PlyCount != outcome.Plies:
		return outcome, fmt.Errorf("record claims %d plies, replay has %d: %w",
			record.PlyCount, outcome.Plies, errors.ErrRecordMismatch)
	}

	got := g.Record()
	for i, want := range record.Moves {
		if err := compareMove(got.Moves[i], want); err != nil {
			return outcome, err
		}
	}
	if record.Result != "" && record.Result != got.Result {
		return outcome, fmt.Errorf("record claims %s, replay gives %s: %w",
			record.Result, got.Result, errors.ErrRecordMismatch)
	}
	if record.FinalFEN != "" && record.FinalFEN != got.FinalFEN {
		return outcome, fmt.Errorf("record ends at %s, replay at %s: %w",
			record.FinalFEN, got.FinalFEN, errors.ErrRecordMismatch)
	}
	return outcome, nil
}

// compareMove checks one recorded move against the replayed one. The piece
// name is optional in hand-written records.
func compareMove(got, want output.JSONMove) error {
	switch {
	case want.Piece != "" && want.Piece != got.Piece:
		return fmt.Errorf("ply %d %s-%s moves a %s, not a %s: %w",
			got.Ply, got.From, got.To, got.Piece, want.Piece, errors.ErrRecordMismatch)
	case want.Captured != got.Captured:
		return fmt.Errorf("ply %d %s-%s captures %q, record says %q: %w",
			got.Ply, got.From, got.To, got.Captured, want.Captured, errors.ErrRecordMismatch)
	case want.Check != got.Check:
		return fmt.Errorf("ply %d %s-%s check is %v, record says %v: %w",
			got.Ply, got.From, got.To, got.Check, want.Check, errors.ErrRecordMismatch)
	}
	return nil
}
