package main

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// saveRestoreBool is a helper to save and defer-restore a bool flag pointer.
// Usage: defer saveRestoreBool(noBoard, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyPlayerFlags(t *testing.T) {
	t.Run("names override defaults", func(t *testing.T) {
		defer saveRestoreString(whiteName, "Alice")()
		defer saveRestoreString(blackName, "Bob")()
		cfg := config.NewConfig()
		applyPlayerFlags(cfg)
		if cfg.Players.WhiteName != "Alice" || cfg.Players.BlackName != "Bob" {
			t.Errorf("Players = %+v; want Alice/Bob", cfg.Players)
		}
	})

	t.Run("empty flags keep defaults", func(t *testing.T) {
		defer saveRestoreString(whiteName, "")()
		defer saveRestoreString(blackName, "")()
		cfg := config.NewConfig()
		applyPlayerFlags(cfg)
		if cfg.Players.WhiteName != "White" || cfg.Players.BlackName != "Black" {
			t.Errorf("Players = %+v; want White/Black", cfg.Players)
		}
	})
}

func TestApplySetupFlags(t *testing.T) {
	defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
	defer saveRestoreString(inputFile, "moves.txt")()
	cfg := config.NewConfig()
	applySetupFlags(cfg)
	if cfg.Setup.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.Setup.StartFEN)
	}
	if cfg.InputFile != "moves.txt" {
		t.Errorf("InputFile = %q; want moves.txt", cfg.InputFile)
	}
}

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreBool(noBoard, true)()
	defer saveRestoreBool(colourOutput, true)()
	defer saveRestoreBool(listMoves, true)()
	defer saveRestoreString(recordFile, "game.json")()
	cfg := config.NewConfig()
	applyOutputFlags(cfg)
	if cfg.Output.ShowBoard {
		t.Error("ShowBoard = true; want false with -noboard")
	}
	if !cfg.Output.Colour || !cfg.Output.ShowMoves {
		t.Errorf("Output = %+v; want colour and move listing", cfg.Output)
	}
	if cfg.Output.RecordFile != "game.json" {
		t.Errorf("RecordFile = %q; want game.json", cfg.Output.RecordFile)
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name  string
		v     int
		quiet bool
		want  int
	}{
		{"default", config.Events, false, config.Events},
		{"commentary", config.Commentary, false, config.Commentary},
		{"quiet wins", config.Commentary, true, config.Silent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(verbosity, tt.v)()
			defer saveRestoreBool(quiet, tt.quiet)()
			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}
