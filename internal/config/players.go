package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PlayerConfig holds the display names of the two players.
type PlayerConfig struct {
	WhiteName string
	BlackName string
}

// NewPlayerConfig creates a PlayerConfig with the default names.
func NewPlayerConfig() *PlayerConfig {
	return &PlayerConfig{
		WhiteName: engine.DefaultWhiteName,
		BlackName: engine.DefaultBlackName,
	}
}

// Validate checks that the names are set and tell the players apart.
func (p *PlayerConfig) Validate() error {
	if p.WhiteName == "" || p.BlackName == "" {
		return fmt.Errorf("player names must not be empty: %w", errors.ErrInvalidConfig)
	}
	if p.WhiteName == p.BlackName {
		return fmt.Errorf("both players are named %q: %w", p.WhiteName, errors.ErrInvalidConfig)
	}
	return nil
}
