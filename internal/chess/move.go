package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Move is a request to move whatever stands on From to To.
type Move struct {
	From Position
	To   Position
}

// String returns the move in hyphenated coordinate form, e.g. "E2-E4".
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// ParseMove decodes a combined coordinate pair such as "E2E4" or "E2-E4".
func ParseMove(s string) (Move, error) {
	s = strings.ReplaceAll(s, "-", "")
	if len(s) != 4 {
		return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidCoordinate)
	}
	from, err := ParsePosition(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParsePosition(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
