package config

import (
	"fmt"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/errors"
)

// Board size limits. Rows are lettered, so there are at most 26.
const (
	MinBoardSize = 5
	MaxBoardRows = board.MaxRowCount
	MaxBoardCols = 99
	DefaultRows  = 12
	DefaultCols  = 12
)

// BoardConfig holds the grid dimensions.
type BoardConfig struct {
	// Rows is the number of rows, labelled A, B, C, ...
	Rows int

	// Cols is the number of columns, numbered from 1
	Cols int
}

// NewBoardConfig creates a BoardConfig for a 12x12 grid.
func NewBoardConfig() *BoardConfig {
	return &BoardConfig{
		Rows: DefaultRows,
		Cols: DefaultCols,
	}
}

// Validate checks the dimensions against the size limits.
func (b *BoardConfig) Validate() error {
	if b.Rows < MinBoardSize || b.Rows > MaxBoardRows {
		return fmt.Errorf("rows %d outside [%d, %d]: %w",
			b.Rows, MinBoardSize, MaxBoardRows, errors.ErrInvalidConfig)
	}
	if b.Cols < MinBoardSize || b.Cols > MaxBoardCols {
		return fmt.Errorf("cols %d outside [%d, %d]: %w",
			b.Cols, MinBoardSize, MaxBoardCols, errors.ErrInvalidConfig)
	}
	return nil
}

// NewGrid builds an empty grid of the configured size.
func (b *BoardConfig) NewGrid() (*board.Grid, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return board.NewGridSize(b.Rows, b.Cols)
}
