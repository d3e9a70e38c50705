package input

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Script serves a fixed list of moves and then reports io.EOF.
type Script struct {
	moves []chess.Move
	next  int
}

// NewScript creates a Script from parsed moves.
func NewScript(moves ...chess.Move) *Script {
	return &Script{moves: moves}
}

// ParseScript creates a Script from combined coordinate tokens such as
// "E2E4" or "E2-E4".
func ParseScript(tokens ...string) (*Script, error) {
	moves := make([]chess.Move, 0, len(tokens))
	for _, tok := range tokens {
		m, err := chess.ParseMove(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return NewScript(moves...), nil
}

// MustParseScript is like ParseScript but panics on a malformed token.
func MustParseScript(tokens ...string) *Script {
	s, err := ParseScript(tokens...)
	if err != nil {
		panic(err)
	}
	return s
}

// NextMove returns the next scripted move, or io.EOF once all are served.
func (s *Script) NextMove() (chess.Position, chess.Position, error) {
	if s.next >= len(s.moves) {
		return chess.Position{}, chess.Position{}, io.EOF
	}
	m := s.moves[s.next]
	s.next++
	return m.From, m.To, nil
}

// Remaining returns the number of moves not yet served.
func (s *Script) Remaining() int {
	return len(s.moves) - s.next
}
