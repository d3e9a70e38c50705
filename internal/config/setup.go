package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// SetupConfig holds settings for the starting position.
type SetupConfig struct {
	// StartFEN is the starting position; empty means the standard one.
	StartFEN string
}

// NewSetupConfig creates a SetupConfig for the standard starting position.
func NewSetupConfig() *SetupConfig {
	return &SetupConfig{}
}

// Validate checks that StartFEN, when set, describes a position.
func (s *SetupConfig) Validate() error {
	if s.StartFEN == "" {
		return nil
	}
	if _, err := engine.NewBoardFromFEN(s.StartFEN); err != nil {
		return fmt.Errorf("start position: %w: %w", errors.ErrInvalidConfig, err)
	}
	return nil
}

// NewBoard builds the configured starting board for the named players.
func (c *Config) NewBoard() (*engine.Board, error) {
	if c.Setup.StartFEN == "" {
		return engine.NewInitialBoard(c.Players.WhiteName, c.Players.BlackName), nil
	}
	board, err := engine.NewBoardFromFEN(c.Setup.StartFEN)
	if err != nil {
		return nil, err
	}
	board.SetNames(c.Players.WhiteName, c.Players.BlackName)
	return board, nil
}
