package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayers sets the player names. Empty names keep the defaults.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	if white != "" {
		b.cfg.Players.WhiteName = white
	}
	if black != "" {
		b.cfg.Players.BlackName = black
	}
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Setup.StartFEN = fen
	return b
}

// WithColour enables coloured board output.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithBoard controls whether the board is rendered.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithMoveListing enables the legal move listing.
func (b *ConfigBuilder) WithMoveListing(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowMoves = enabled
	return b
}

// WithRecordFile sets where the JSON game record is written.
func (b *ConfigBuilder) WithRecordFile(path string) *ConfigBuilder {
	b.cfg.Output.RecordFile = path
	return b
}

// WithInputFile sets the move file.
func (b *ConfigBuilder) WithInputFile(path string) *ConfigBuilder {
	b.cfg.InputFile = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
