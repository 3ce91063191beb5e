package config

import (
	"io"
	"time"
)

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

// WithBoardSize sets the grid dimensions.
func (b *ConfigBuilder) WithBoardSize(rows, cols int) *ConfigBuilder {
	b.cfg.Board.Rows = rows
	b.cfg.Board.Cols = cols
	return b
}

// WithSearch sets the solver's time budget and depth.
func (b *ConfigBuilder) WithSearch(maxTime time.Duration, maxDepth int) *ConfigBuilder {
	b.cfg.Search.MaxTime = maxTime
	b.cfg.Search.MaxDepth = maxDepth
	return b
}

// WithPruning enables or disables alpha-beta cut-offs.
func (b *ConfigBuilder) WithPruning(enabled bool) *ConfigBuilder {
	b.cfg.Search.Pruning = enabled
	return b
}

// WithOrdering enables or disables move ordering.
func (b *ConfigBuilder) WithOrdering(enabled bool) *ConfigBuilder {
	b.cfg.Search.Ordering = enabled
	return b
}

// WithVerticalStart sets which side moves first.
func (b *ConfigBuilder) WithVerticalStart(vertical bool) *ConfigBuilder {
	b.cfg.Match.VerticalStarts = vertical
	return b
}

// WithRandomStart picks the starting side at random for each game.
func (b *ConfigBuilder) WithRandomStart(enabled bool) *ConfigBuilder {
	b.cfg.Match.RandomStart = enabled
	return b
}

// WithMaxPlies caps game length.
func (b *ConfigBuilder) WithMaxPlies(plies int) *ConfigBuilder {
	b.cfg.Match.MaxPlies = plies
	return b
}

// WithSeries sets the number of self-play games and parallel workers.
func (b *ConfigBuilder) WithSeries(games, workers int) *ConfigBuilder {
	b.cfg.Match.Games = games
	b.cfg.Match.Workers = workers
	return b
}

// WithDuplicateDetection enables counting of repeated final positions.
func (b *ConfigBuilder) WithDuplicateDetection(enabled bool) *ConfigBuilder {
	b.cfg.Match.DetectDuplicates = enabled
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.JSONFormat = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
