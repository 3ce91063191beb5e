package config

import (
	"fmt"

	"github.com/lgbarn/twixt-go/internal/errors"
)

// MatchConfig holds settings for playing games and self-play series.
type MatchConfig struct {
	// VerticalStarts gives the first move to the vertical side
	VerticalStarts bool

	// RandomStart picks the starting side at random for each game
	RandomStart bool

	// MaxPlies ends a game as a draw after this many plies (0 = rows*cols)
	MaxPlies int

	// Games is the number of games in a self-play series
	Games int

	// Workers is the number of games played in parallel (0 = GOMAXPROCS)
	Workers int

	// DetectDuplicates counts series games that end in the same position
	DetectDuplicates bool
}

// NewMatchConfig creates a MatchConfig for a single game with vertical
// moving first.
func NewMatchConfig() *MatchConfig {
	return &MatchConfig{
		VerticalStarts:   true,
		Games:            1,
		DetectDuplicates: true,
	}
}

// Validate checks the match settings.
func (m *MatchConfig) Validate() error {
	if m.Games < 1 {
		return fmt.Errorf("games %d must be at least 1: %w", m.Games, errors.ErrInvalidConfig)
	}
	if m.MaxPlies < 0 {
		return fmt.Errorf("max plies %d is negative: %w", m.MaxPlies, errors.ErrInvalidConfig)
	}
	if m.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", m.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// PlyLimit returns the effective ply cap for a rows x cols grid.
func (m *MatchConfig) PlyLimit(rows, cols int) int {
	if m.MaxPlies > 0 {
		return m.MaxPlies
	}
	return rows * cols
}
