// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Players
	whiteName = flag.String("white", "", "Name of the White player")
	blackName = flag.String("black", "", "Name of the Black player")

	// Setup
	startFEN = flag.String("fen", "", "Starting position in FEN (default: standard position)")

	// Input
	inputFile = flag.String("i", "", "Read moves from this file; a .json game record is replayed (default: stdin)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	noBoard      = flag.Bool("noboard", false, "Don't print the board")
	colourOutput = flag.Bool("colour", false, "Colour the board diagram")
	recordFile   = flag.String("J", "", "Write a JSON game record to this file")
	listMoves    = flag.Bool("moves", false, "List the legal moves of the side to move and exit")

	// Record verification
	verifyMode = flag.Bool("verify", false, "Replay the JSON game records named as arguments and check them")
	workers    = flag.Int("workers", 0, "Number of worker threads for -verify (0 = auto-detect based on CPU cores)")
	failFast   = flag.Bool("failfast", false, "Stop -verify at the first record that fails")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", config.Events, "Verbosity: 0 silent, 1 game events, 2 commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// General
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPlayerFlags(cfg)
	applySetupFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}

// applyPlayerFlags sets the player names. Unset flags keep the defaults.
func applyPlayerFlags(cfg *config.Config) {
	if *whiteName != "" {
		cfg.Players.WhiteName = *whiteName
	}
	if *blackName != "" {
		cfg.Players.BlackName = *blackName
	}
}

// applySetupFlags configures the starting position and move input.
func applySetupFlags(cfg *config.Config) {
	cfg.Setup.StartFEN = *startFEN
	cfg.InputFile = *inputFile
}

// applyOutputFlags configures what is displayed and saved.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.Colour = *colourOutput
	cfg.Output.ShowMoves = *listMoves
	cfg.Output.RecordFile = *recordFile
}
