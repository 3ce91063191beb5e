package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/twixt-go/internal/errors"
)

// SearchConfig holds the solver limits.
type SearchConfig struct {
	MaxTime  time.Duration // per-move budget; 0 means no deadline
	MaxDepth int           // deepest iterative-deepening round
	Pruning  bool          // alpha-beta cut-offs
	Ordering bool          // move-ordering heuristic
}

// NewSearchConfig creates a SearchConfig with a one second budget and
// depth four, pruning and ordering on.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		MaxTime:  time.Second,
		MaxDepth: 4,
		Pruning:  true,
		Ordering: true,
	}
}

// Validate checks that the limits are usable.
func (s *SearchConfig) Validate() error {
	if s.MaxDepth < 1 {
		return fmt.Errorf("search depth %d must be at least 1: %w", s.MaxDepth, errors.ErrInvalidConfig)
	}
	if s.MaxTime < 0 {
		return fmt.Errorf("search time %v is negative: %w", s.MaxTime, errors.ErrInvalidConfig)
	}
	return nil
}
