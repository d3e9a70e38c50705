package output

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Result strings as used in game records.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// JSONGame represents a played game in JSON format.
type JSONGame struct {
	ID         string     `json:"id"`
	White      string     `json:"white"`
	Black      string     `json:"black"`
	InitialFEN string     `json:"initialFEN"`
	Moves      []JSONMove `json:"moves"`
	PlyCount   int        `json:"plyCount"`
	Result     string     `json:"result"`
	Status     string     `json:"status"`
	FinalFEN   string     `json:"finalFEN,omitempty"`
}

// JSONMove represents a committed move in JSON format.
type JSONMove struct {
	Ply      int    `json:"ply"`
	Color    string `json:"color"` // "white" or "black"
	From     string `json:"from"`
	To       string `json:"to"`
	Piece    string `json:"piece"`
	Captured string `json:"captured,omitempty"`
	Check    bool   `json:"check,omitempty"`
}

// MovesToJSON converts committed moves to their JSON form, numbering plies
// from 1.
func MovesToJSON(records []engine.MoveRecord) []JSONMove {
	moves := make([]JSONMove, len(records))
	for i, rec := range records {
		jm := JSONMove{
			Ply:   i + 1,
			Color: colourName(rec.Colour),
			From:  rec.From.String(),
			To:    rec.To.String(),
			Piece: rec.Kind.String(),
			Check: rec.Check,
		}
		if rec.Captured != chess.NoPiece {
			jm.Captured = rec.Captured.String()
		}
		moves[i] = jm
	}
	return moves
}

// Result returns the result string for a game that stopped with status and
// colour to move.
func Result(status chess.Status, toMove chess.Colour) string {
	switch status {
	case chess.Checkmate:
		if toMove == chess.White {
			return BlackWins
		}
		return WhiteWins
	case chess.Stalemate:
		return Draw
	default:
		return Unfinished
	}
}

// ToMoves converts the recorded moves back to coordinate pairs.
func (g *JSONGame) ToMoves() ([]chess.Move, error) {
	moves := make([]chess.Move, 0, len(g.Moves))
	for _, jm := range g.Moves {
		m, err := chess.ParseMove(jm.From + jm.To)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
