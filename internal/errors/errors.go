// Package errors provides sentinel errors and error types for the twixt engine.
// Illegal placements are expected outcomes of play, so every legality failure
// is a plain error value that callers inspect with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for legality checking and configuration.
// Use these with errors.Is() to check for specific failure kinds.
var (
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrCellOccupied indicates the target cell already holds a peg.
	ErrCellOccupied = errors.New("cell occupied")

	// ErrBorderViolation indicates a move onto the opponent's home edge.
	ErrBorderViolation = errors.New("border restriction")

	// ErrUnsupportedWinningEdge indicates a move onto the final edge with
	// no same-side peg a bridge away.
	ErrUnsupportedWinningEdge = errors.New("winning edge not supported by a bridge")

	// ErrInvalidCoordinate indicates move text that cannot be parsed.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a placement attempted after the game was decided.
	ErrGameOver = errors.New("game already decided")
)

// PlacementError wraps a legality failure with the context of the attempted
// placement. It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type PlacementError struct {
	Err  error  // The underlying sentinel
	Side string // Side that attempted the placement
	Move string // Move text, e.g. "C3"
	Ply  int    // 1-based ply number (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *PlacementError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PlacementError wrapper.
func (e *PlacementError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
