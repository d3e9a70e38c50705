// Package testutil provides shared test utilities for the chess-rules-go project.
// These utilities reduce code duplication across test files and provide
// consistent board and game fixtures.
package testutil

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustBoard builds a board from fen, calling t.Fatal if the FEN is invalid.
func MustBoard(t *testing.T, fen string) *engine.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("invalid test FEN %q: %v", fen, err)
	}
	return board
}

// AssertSnapshotEqual fails if two board snapshots differ.
func AssertSnapshotEqual(t *testing.T, got, want chess.Snapshot, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg == "" {
			msg = "board"
		}
		t.Errorf("%s: mismatch (-want +got):\n%s\nwant %s\ngot  %s",
			msg, diff, snapshotFEN(want), snapshotFEN(got))
	}
}

// QuietConfig returns a config that writes output to io.Discard and
// diagnostics to the returned buffer at the given verbosity.
func QuietConfig(verbosity int) (*config.Config, *bytes.Buffer) {
	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithVerbosity(verbosity).
		WithOutput(io.Discard).
		WithLog(log).
		Build()
	return cfg, log
}

// SnapshotRecorder is a renderer that keeps every snapshot it is given.
type SnapshotRecorder struct {
	Snapshots []chess.Snapshot

	// Err, when set, is returned from every Render call.
	Err error
}

// Render records s.
func (r *SnapshotRecorder) Render(s chess.Snapshot) error {
	r.Snapshots = append(r.Snapshots, s)
	return r.Err
}

// Last returns the most recent snapshot.
func (r *SnapshotRecorder) Last() chess.Snapshot {
	return r.Snapshots[len(r.Snapshots)-1]
}

// snapshotFEN renders the piece placement of s in FEN form for failure messages.
func snapshotFEN(s chess.Snapshot) string {
	var buf bytes.Buffer
	for rank := chess.Height - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.Width; file++ {
			pc := s.Squares[file][rank]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				buf.WriteByte(byte('0' + empty))
				empty = 0
			}
			buf.WriteByte(pc.Letter())
		}
		if empty > 0 {
			buf.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			buf.WriteByte('/')
		}
	}
	return buf.String()
}
