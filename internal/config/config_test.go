package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != Events {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Events)
	}
	if cfg.Players.WhiteName != "White" || cfg.Players.BlackName != "Black" {
		t.Errorf("Players = %+v, want White/Black", cfg.Players)
	}
	if cfg.Setup.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.Setup.StartFEN)
	}
	if !cfg.Output.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if cfg.Output.Colour {
		t.Error("Colour should be false by default")
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should default to stdout/stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestConfig_Validate verifies each section reports its problems
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *Config
		wantErrs int
	}{
		{
			name:  "valid custom config",
			build: func() *Config { return NewConfigBuilder().WithPlayers("Alice", "Bob").WithRecordFile("game.json").Build() },
		},
		{
			name:     "verbosity too high",
			build:    func() *Config { return NewConfigBuilder().WithVerbosity(3).Build() },
			wantErrs: 1,
		},
		{
			name:     "same names",
			build:    func() *Config { return NewConfigBuilder().WithPlayers("Ann", "Ann").Build() },
			wantErrs: 1,
		},
		{
			name:     "bad FEN",
			build:    func() *Config { return NewConfigBuilder().WithStartFEN("8/8 w").Build() },
			wantErrs: 1,
		},
		{
			name:     "FEN without black king",
			build:    func() *Config { return NewConfigBuilder().WithStartFEN("8/p7/8/8/8/8/8/4RK2 w - - 0 1").Build() },
			wantErrs: 1,
		},
		{
			name:     "FEN with waiting side in check",
			build:    func() *Config { return NewConfigBuilder().WithStartFEN("4k3/8/8/8/8/8/8/4RK2 w - - 0 1").Build() },
			wantErrs: 1,
		},
		{
			name:     "record file extension",
			build:    func() *Config { return NewConfigBuilder().WithRecordFile("game.txt").Build() },
			wantErrs: 1,
		},
		{
			name: "everything wrong",
			build: func() *Config {
				return NewConfigBuilder().
					WithVerbosity(-1).
					WithPlayers("Ann", "Ann").
					WithStartFEN("nonsense").
					WithRecordFile("game.pgn").
					WithOutput(nil).
					Build()
			},
			wantErrs: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if tt.wantErrs == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
			var merr *multierror.Error
			if !errors.As(err, &merr) {
				t.Fatalf("Validate() error %T is not a *multierror.Error", err)
			}
			if got := len(merr.Errors); got != tt.wantErrs {
				t.Errorf("Validate() reported %d errors, want %d: %v", got, tt.wantErrs, err)
			}
		})
	}
}

// TestSetupConfig_ValidateKeepsCause verifies a FEN problem stays inspectable
func TestSetupConfig_ValidateKeepsCause(t *testing.T) {
	s := &SetupConfig{StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w - - 0 1"}
	err := s.Validate()
	if !errors.Is(err, chesserrors.ErrInvalidFEN) {
		t.Errorf("Validate() error = %v, want ErrInvalidFEN in chain", err)
	}
}

// TestConfig_NewBoard verifies the configured board honours names and FEN
func TestConfig_NewBoard(t *testing.T) {
	cfg := NewConfigBuilder().
		WithPlayers("Alice", "Bob").
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1").
		Build()

	board, err := cfg.NewBoard()
	if err != nil {
		t.Fatalf("NewBoard() error: %v", err)
	}
	if got := board.Player(chess.White).Name(); got != "Alice" {
		t.Errorf("white name = %q, want Alice", got)
	}
	if board.ToMove != chess.Black {
		t.Errorf("ToMove = %v, want Black", board.ToMove)
	}
	if got := board.Player(chess.White).PieceCount(); got != 1 {
		t.Errorf("white PieceCount() = %d, want 1", got)
	}

	board, err = NewConfig().NewBoard()
	if err != nil {
		t.Fatalf("default NewBoard() error: %v", err)
	}
	if got := board.Player(chess.Black).PieceCount(); got != 16 {
		t.Errorf("default black PieceCount() = %d, want 16", got)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfig_Logf verifies messages are gated by verbosity
func TestConfig_Logf(t *testing.T) {
	tests := []struct {
		verbosity int
		level     int
		want      bool
	}{
		{Silent, Events, false},
		{Events, Events, true},
		{Events, Commentary, false},
		{Commentary, Commentary, true},
	}
	for _, tt := range tests {
		buf := &bytes.Buffer{}
		cfg := NewConfigBuilder().WithVerbosity(tt.verbosity).WithLog(buf).Build()
		cfg.Logf(tt.level, "hello %s\n", "world")
		if got := strings.Contains(buf.String(), "hello world"); got != tt.want {
			t.Errorf("verbosity %d level %d logged = %v, want %v", tt.verbosity, tt.level, got, tt.want)
		}
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithPlayers("Alice", "").
		WithColour(true).
		WithBoard(false).
		WithMoveListing(true).
		WithInputFile("moves.txt").
		WithOutput(out).
		WithVerbosity(Commentary).
		Build()

	if cfg.Players.WhiteName != "Alice" || cfg.Players.BlackName != "Black" {
		t.Errorf("Players = %+v, want Alice/Black", cfg.Players)
	}
	if !cfg.Output.Colour || cfg.Output.ShowBoard || !cfg.Output.ShowMoves {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.InputFile != "moves.txt" {
		t.Errorf("InputFile = %q, want moves.txt", cfg.InputFile)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != Commentary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Commentary)
	}
}
