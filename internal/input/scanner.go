// Package input provides move sources that feed coordinate pairs to a game.
package input

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// commentChar starts a comment that runs to the end of the line.
const commentChar = '#'

// Scanner reads moves as whitespace-separated coordinate tokens. A move is
// either two tokens ("E2 E4") or one combined token ("E2E4", "E2-E4").
// Tokens are case-insensitive.
type Scanner struct {
	lines   *bufio.Scanner
	pending []string
	lineNum uint
}

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{lines: bufio.NewScanner(r)}
}

// NextMove returns the next source and destination squares. It returns
// io.EOF when the input is exhausted, including when it ends half-way
// through a pair. A malformed token is consumed and reported as an
// ErrInvalidCoordinate error so the caller can ask again.
func (s *Scanner) NextMove() (chess.Position, chess.Position, error) {
	first, err := s.token()
	if err != nil {
		return chess.Position{}, chess.Position{}, err
	}

	if len(first) != 2 {
		m, err := chess.ParseMove(first)
		if err != nil {
			return chess.Position{}, chess.Position{}, err
		}
		return m.From, m.To, nil
	}

	src, err := chess.ParsePosition(first)
	if err != nil {
		return chess.Position{}, chess.Position{}, err
	}
	second, err := s.token()
	if err != nil {
		return chess.Position{}, chess.Position{}, err
	}
	dest, err := chess.ParsePosition(second)
	if err != nil {
		return chess.Position{}, chess.Position{}, err
	}
	return src, dest, nil
}

// Line returns the number of the last line read.
func (s *Scanner) Line() uint {
	return s.lineNum
}

// token returns the next upper-cased token, reading more lines as needed.
func (s *Scanner) token() (string, error) {
	for len(s.pending) == 0 {
		if !s.lines.Scan() {
			if err := s.lines.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		s.lineNum++
		line := s.lines.Text()
		if i := strings.IndexByte(line, commentChar); i >= 0 {
			line = line[:i]
		}
		s.pending = strings.Fields(strings.ToUpper(line))
	}
	tok := s.pending[0]
	s.pending = s.pending[1:]
	return tok, nil
}
