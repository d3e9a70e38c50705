// Package game runs the turn-based loop: it asks a move source for moves,
// applies them to the board, renders the result and decides when the game
// is over.
package game

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// MoveSource supplies the next requested move. It returns io.EOF when no
// more input is available; an error wrapping errors.ErrInvalidCoordinate
// means the input could not be decoded and the same player is asked again.
type MoveSource interface {
	NextMove() (src, dest chess.Position, err error)
}

// Renderer is told about the board at the start and after every committed
// move. It receives a copy and cannot change the game.
type Renderer interface {
	Render(chess.Snapshot) error
}

// State is where the turn loop stands.
type State int

const (
	AwaitingMove  State = iota // waiting for the current player's move
	RoundAdvanced              // a move was committed and the turn passed
	Terminal                   // checkmate or stalemate reached
	NoInput                    // the move source ran dry
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case AwaitingMove:
		return "AwaitingMove"
	case RoundAdvanced:
		return "RoundAdvanced"
	case Terminal:
		return "Terminal"
	case NoInput:
		return "NoInput"
	default:
		return "Unknown"
	}
}

// Done reports whether the loop has stopped.
func (s State) Done() bool {
	return s == Terminal || s == NoInput
}

// Outcome summarises a finished Play.
type Outcome struct {
	State  State
	Status chess.Status
	Winner *engine.Player // nil unless checkmate
	Plies  int
	Result string // record result string, e.g. "0-1" or "*"
}

// Game owns a board and drives it from a move source.
type Game struct {
	id         uuid.UUID
	board      *engine.Board
	initialFEN string
	source     MoveSource
	renderer   Renderer
	cfg        *config.Config
	prompt     io.Writer

	round    int
	started  bool
	state    State
	status   chess.Status
	history  []engine.MoveRecord
	rejected int

	firstReject error // reported by Verify
}

// New creates a game on board. renderer may be nil; a nil cfg plays
// silently.
func New(board *engine.Board, source MoveSource, renderer Renderer, cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfigBuilder().WithVerbosity(config.Silent).WithLog(nil).Build()
	}
	return &Game{
		id:         uuid.New(),
		board:      board,
		initialFEN: engine.BoardToFEN(board),
		source:     source,
		renderer:   renderer,
		cfg:        cfg,
		round:      int(board.ToMove),
	}
}

// SetPrompt makes the game ask for each move on w.
func (g *Game) SetPrompt(w io.Writer) {
	g.prompt = w
}

// ID returns the game's unique identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Round returns the index of the player to move: 0 for White, 1 for Black.
func (g *Game) Round() int {
	return g.round
}

// Board returns the board the game is played on.
func (g *Game) Board() *engine.Board {
	return g.board
}

// State returns the current loop state.
func (g *Game) State() State {
	return g.state
}

// Status returns the status last computed for the side to move.
func (g *Game) Status() chess.Status {
	return g.status
}

// History returns the committed moves in order.
func (g *Game) History() []engine.MoveRecord {
	out := make([]engine.MoveRecord, len(g.history))
	copy(out, g.history)
	return out
}

// Rejected returns how many requested moves were refused.
func (g *Game) Rejected() int {
	return g.rejected
}

// current returns the player whose turn it is.
func (g *Game) current() *engine.Player {
	return g.board.Player(chess.Colour(g.round))
}

// start renders the opening position and checks whether the game is
// already over.
func (g *Game) start() error {
	g.started = true
	g.cfg.Logf(config.Commentary, "game %s: %s vs %s from %s\n",
		g.id, g.board.Player(chess.White).Name(), g.board.Player(chess.Black).Name(), g.initialFEN)
	if err := g.render(); err != nil {
		return err
	}
	g.evaluate()
	return nil
}

// Step performs one transition of the turn loop and returns the new state.
// Illegal moves and undecodable input leave the round unchanged and return
// AwaitingMove with a nil error; the returned error is reserved for
// failures of the source or renderer themselves.
func (g *Game) Step() (State, error) {
	if !g.started {
		if err := g.start(); err != nil {
			return g.state, err
		}
	}
	if g.state.Done() {
		return g.state, nil
	}

	player := g.current()
	if g.prompt != nil {
		fmt.Fprintf(g.prompt, "%s to move: ", player)
	}

	src, dest, err := g.source.NextMove()
	switch {
	case stderrors.Is(err, io.EOF):
		g.state = NoInput
		g.cfg.Logf(config.Events, "game %s: input exhausted after %d plies\n", g.id, len(g.history))
		return g.state, nil
	case errors.IsIllegalMove(err):
		g.reject(player, err)
		return g.state, nil
	case err != nil:
		return g.state, errors.Wrap(err, "read move")
	}

	rec, err := g.board.MovePieceByPosition(player, src, dest)
	if err != nil {
		g.reject(player, err)
		return g.state, nil
	}

	g.history = append(g.history, *rec)
	g.round = 1 - g.round
	g.cfg.Logf(config.Commentary, "%d. %s %s %s\n", len(g.history), player.Name(), rec.Kind, rec.Move())
	if err := g.render(); err != nil {
		return g.state, err
	}
	g.evaluate()
	if g.state == AwaitingMove {
		g.state = RoundAdvanced
	}
	return g.state, nil
}

// Play runs Step until the game reaches a terminal state or the source is
// exhausted.
func (g *Game) Play() (Outcome, error) {
	for {
		state, err := g.Step()
		if err != nil {
			return g.outcome(), err
		}
		if state.Done() {
			return g.outcome(), nil
		}
	}
}

// evaluate computes the status for the side to move and ends the game on
// checkmate or stalemate.
func (g *Game) evaluate() {
	g.status = engine.Status(g.board, chess.Colour(g.round))
	if !g.status.Terminal() {
		g.state = AwaitingMove
		return
	}
	g.state = Terminal
	if g.status == chess.Checkmate {
		g.cfg.Logf(config.Events, "game %s: checkmate, %s wins\n", g.id, g.board.Opponent(chess.Colour(g.round)))
	} else {
		g.cfg.Logf(config.Events, "game %s: stalemate\n", g.id)
	}
}

// reject reports a refused move; the same player moves again.
func (g *Game) reject(player *engine.Player, err error) {
	g.rejected++
	g.state = AwaitingMove
	if g.firstReject == nil {
		g.firstReject = err
	}
	var moveErr *errors.MoveError
	if stderrors.As(err, &moveErr) {
		moveErr.Ply = len(g.history) + 1
	}
	g.cfg.Logf(config.Events, "Illegal move: %v\n", err)
	if g.prompt != nil {
		fmt.Fprintf(g.prompt, "%v, try again\n", err)
	}
}

func (g *Game) render() error {
	if g.renderer == nil {
		return nil
	}
	if err := g.renderer.Render(g.board.Snapshot()); err != nil {
		return errors.Wrap(err, "render board")
	}
	return nil
}

func (g *Game) outcome() Outcome {
	o := Outcome{
		State:  g.state,
		Status: g.status,
		Plies:  len(g.history),
		Result: output.Result(g.status, chess.Colour(g.round)),
	}
	if g.state == Terminal && g.status == chess.Checkmate {
		o.Winner = g.board.Opponent(chess.Colour(g.round))
	}
	return o
}

// Record returns the game as a JSON record.
func (g *Game) Record() *output.JSONGame {
	status := g.status
	if !g.started {
		status = engine.Status(g.board, chess.Colour(g.round))
	}
	return &output.JSONGame{
		ID:         g.id.String(),
		White:      g.board.Player(chess.White).Name(),
		Black:      g.board.Player(chess.Black).Name(),
		InitialFEN: g.initialFEN,
		Moves:      output.MovesToJSON(g.history),
		PlyCount:   len(g.history),
		Result:     output.Result(status, chess.Colour(g.round)),
		Status:     status.String(),
		FinalFEN:   engine.BoardToFEN(g.board),
	}
}
