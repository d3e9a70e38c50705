package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// emptySquare marks an unoccupied square in the diagram.
const emptySquare = '.'

// TextRenderer draws the board as a text diagram with rank 8 at the top and
// the file letters underneath. In colour mode White's pieces are bold and
// Black's are cyan.
type TextRenderer struct {
	w  io.Writer
	au aurora.Aurora
}

// NewTextRenderer creates a renderer writing to w.
func NewTextRenderer(w io.Writer, colour bool) *TextRenderer {
	return &TextRenderer{w: w, au: aurora.NewAurora(colour)}
}

// Render writes one diagram of the snapshot.
func (r *TextRenderer) Render(s chess.Snapshot) error {
	var sb strings.Builder
	for rank := chess.Height - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.Width; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(r.square(s.Squares[file][rank]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for file := 0; file < chess.Width; file++ {
		if file > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(chess.FileBase + file))
	}
	fmt.Fprintf(&sb, "\n%s to move\n\n", s.ToMove)

	_, err := io.WriteString(r.w, sb.String())
	return err
}

func (r *TextRenderer) square(pc chess.Piece) string {
	if pc.IsEmpty() {
		return string(emptySquare)
	}
	letter := string(pc.Letter())
	if pc.Owner == chess.White {
		return r.au.Bold(letter).String()
	}
	return r.au.Cyan(letter).String()
}

// WriteMoves writes one move per line in hyphenated coordinate form.
func WriteMoves(w io.Writer, moves []chess.Move) error {
	var sb strings.Builder
	for _, m := range moves {
		sb.WriteString(m.String())
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
