// chess-rules plays a two-player game of chess from coordinate moves read on
// standard input or from a file, enforcing the movement rules and stopping at
// checkmate or stalemate.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/input"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if *verifyMode {
		if failed := verifyRecords(cfg, flag.Args(), *workers, *failFast); failed > 0 {
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := run(cfg, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// run sets up the board and move source described by cfg, plays the game
// and writes the optional record. stdin is used when no input file is set.
func run(cfg *config.Config, stdin io.Reader) error {
	board, source, err := setupGame(cfg, stdin)
	if err != nil {
		return err
	}

	if cfg.Output.ShowMoves {
		return output.WriteMoves(cfg.OutputFile, engine.LegalMoves(board, board.ToMove))
	}

	var renderer game.Renderer
	if cfg.Output.ShowBoard {
		renderer = output.NewTextRenderer(cfg.OutputFile, cfg.Output.Colour)
	}

	g := game.New(board, source, renderer, cfg)
	if _, ok := source.(*input.Scanner); ok && cfg.InputFile == "" && isTerminal(stdin) {
		g.SetPrompt(cfg.LogFile)
	}

	outcome, err := g.Play()
	if err != nil {
		return err
	}
	reportOutcome(cfg, g, outcome)

	if cfg.Output.RecordFile != "" {
		return writeRecord(cfg.Output.RecordFile, g.Record())
	}
	return nil
}

// setupGame builds the starting board and the move source.
func setupGame(cfg *config.Config, stdin io.Reader) (*engine.Board, game.MoveSource, error) {
	if filepath.Ext(cfg.InputFile) == ".json" {
		return loadReplay(cfg.InputFile)
	}

	board, err := cfg.NewBoard()
	if err != nil {
		return nil, nil, err
	}
	if cfg.InputFile == "" {
		return board, input.NewScanner(stdin), nil
	}

	file, err := os.Open(cfg.InputFile)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open move file %s", cfg.InputFile)
	}
	// The file stays open until the process exits.
	return board, input.NewScanner(file), nil
}

// loadReplay reads a JSON game record and returns its starting board and a
// source that replays its moves.
func loadReplay(path string) (*engine.Board, game.MoveSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open game record %s", path)
	}
	defer file.Close()

	record, err := output.ReadGame(file)
	if err != nil {
		return nil, nil, err
	}
	board, err := engine.NewBoardFromFEN(record.InitialFEN)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "game record %s", path)
	}
	board.SetNames(record.White, record.Black)

	moves, err := record.ToMoves()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "game record %s", path)
	}
	return board, input.NewScript(moves...), nil
}

// writeRecord writes the JSON game record to path.
func writeRecord(path string, record *output.JSONGame) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create record file %s", path)
	}
	if err := output.NewRecordWriter(file).WriteGame(record); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// reportOutcome prints a one-line summary of how the game ended.
func reportOutcome(cfg *config.Config, g *game.Game, outcome game.Outcome) {
	switch {
	case outcome.Winner != nil:
		fmt.Fprintf(cfg.OutputFile, "Checkmate. %s wins after %d plies.\n", outcome.Winner.Name(), outcome.Plies)
	case outcome.State == game.Terminal:
		fmt.Fprintf(cfg.OutputFile, "Stalemate after %d plies.\n", outcome.Plies)
	default:
		cfg.Logf(config.Events, "%d plies played, %d moves rejected, game %s unfinished\n",
			outcome.Plies, g.Rejected(), g.ID())
	}
}

// isTerminal reports whether r is an interactive character device.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n")
	fmt.Fprintf(os.Stderr, "       chess-rules -verify [options] record.json...\n\n")
	fmt.Fprintf(os.Stderr, "Plays a two-player game of chess from coordinate moves.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove input:\n")
	fmt.Fprintf(os.Stderr, "  Each move is a source and a destination square, e.g. \"E2 E4\",\n")
	fmt.Fprintf(os.Stderr, "  \"E2E4\" or \"E2-E4\". Case is ignored and '#' starts a comment.\n")
	fmt.Fprintf(os.Stderr, "  Castling, en passant and promotion are not supported.\n")
}
