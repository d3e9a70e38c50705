package config

import (
	"fmt"
	"path/filepath"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputConfig holds settings related to what is displayed and saved.
type OutputConfig struct {
	// ShowBoard renders the board at the start and after every move.
	ShowBoard bool

	// Colour enables ANSI colour in the board diagram.
	Colour bool

	// ShowMoves lists the legal moves of the side to move and exits.
	ShowMoves bool

	// RecordFile is where the JSON game record is written; empty disables it.
	RecordFile string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
	}
}

// Validate checks that the output settings are usable.
func (o *OutputConfig) Validate() error {
	if o.RecordFile != "" && filepath.Ext(o.RecordFile) != ".json" {
		return fmt.Errorf("record file %q must end in .json: %w", o.RecordFile, errors.ErrInvalidConfig)
	}
	return nil
}
