package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Position identifies a square by zero-based file and rank.
// A Position may lie off the board; use OutsideOfBoard before treating it
// as a square.
type Position struct {
	File int
	Rank int
}

// Pos is shorthand for Position{File: file, Rank: rank}.
func Pos(file, rank int) Position {
	return Position{File: file, Rank: rank}
}

// ParsePosition decodes a coordinate such as "E2". The letter is taken as an
// offset from 'A' and the digit as an offset from '1'; the result is not
// range checked, so "J9" yields an off-board Position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidCoordinate)
	}
	return Position{File: int(s[0]) - FileBase, Rank: int(s[1]) - RankBase}, nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
// It is intended for fixed coordinates in tests and setup tables.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String encodes the position as a file letter followed by a rank number.
func (p Position) String() string {
	return fmt.Sprintf("%c%d", rune(FileBase+p.File), p.Rank+1)
}

// OutsideOfBoard reports whether the position falls off the board.
func (p Position) OutsideOfBoard() bool {
	return p.File < 0 || p.File >= Width || p.Rank < 0 || p.Rank >= Height
}

// Offset returns the position moved by df files and dr ranks.
func (p Position) Offset(df, dr int) Position {
	return Position{File: p.File + df, Rank: p.Rank + dr}
}

// DirectionTo classifies the relationship between p and dest.
func (p Position) DirectionTo(dest Position) Direction {
	switch {
	case p == dest:
		return Illegal
	case p.Rank == dest.Rank:
		if dest.File > p.File {
			return Right
		}
		return Left
	case p.File == dest.File:
		if dest.Rank > p.Rank {
			return Up
		}
		return Down
	}

	dx := dest.File - p.File
	dy := dest.Rank - p.Rank
	switch {
	case dx == dy:
		if dx > 0 {
			return UpRight
		}
		return DownLeft
	case dx == -dy:
		if dx > 0 {
			return DownRight
		}
		return UpLeft
	}

	// Straight lines are handled above, so only (1,2) and (2,1) shapes remain.
	if abs(dx)+abs(dy) == 3 {
		return KnightJump
	}
	return Illegal
}

// PositionsCrossed walks from p toward dest along dir and returns each square
// visited, excluding p. dest itself is included only when inclusive is set.
// It returns nil for non-ray directions and never walks further than the
// longest board edge, so a dest that is not on the ray cannot loop forever.
func (p Position) PositionsCrossed(dest Position, dir Direction, inclusive bool) []Position {
	if !dir.IsRay() {
		return nil
	}
	df, dr := dir.Step()
	maxSteps := Width
	if Height > maxSteps {
		maxSteps = Height
	}

	var crossed []Position
	cur := p
	for i := 0; i < maxSteps; i++ {
		cur = cur.Offset(df, dr)
		if cur == dest {
			if inclusive {
				crossed = append(crossed, cur)
			}
			return crossed
		}
		crossed = append(crossed, cur)
	}
	return crossed
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
