// Package config provides configuration for the chess rules engine.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels for diagnostics written to LogFile.
const (
	Silent     = 0 // nothing
	Events     = 1 // rejected moves and the final state
	Commentary = 2 // running commentary, one line per move
)

// Config holds all program configuration. It is passed explicitly to the
// components that need it; there is no package-level instance.
type Config struct {
	Verbosity int

	Players *PlayerConfig
	Setup   *SetupConfig
	Output  *OutputConfig

	// InputFile is the move file to read; empty means standard input.
	InputFile string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Events,
		Players:    NewPlayerConfig(),
		Setup:      NewSetupConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream boards and listings are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the configured verbosity is at least
// level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs error
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		errs = multierror.Append(errs, fmt.Errorf("verbosity %d not in %d..%d: %w",
			c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig))
	}
	if c.OutputFile == nil {
		errs = multierror.Append(errs, fmt.Errorf("no output stream: %w", errors.ErrInvalidConfig))
	}
	for _, section := range []interface{ Validate() error }{c.Players, c.Setup, c.Output} {
		if err := section.Validate(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}
