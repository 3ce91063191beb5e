// Package config provides configuration for twixt games, the solver and
// self-play series.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Board  *BoardConfig
	Search *SearchConfig
	Match  *MatchConfig

	// Verbosity: 0=warnings only, 1=game results, 2=solver depth logs
	Verbosity int

	// JSONFormat prints results as JSON instead of text
	JSONFormat bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Board:      NewBoardConfig(),
		Search:     NewSearchConfig(),
		Match:      NewMatchConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream boards and results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-config and returns the first failure.
func (c *Config) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return err
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Match.Validate()
}
