// Package board provides the core TWIXT types: cell marks, sides, moves and
// the labelled grid that holds the live game.
package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/twixt-go/internal/errors"
)

// Mark is the content of a single grid cell.
type Mark int

const (
	Empty      Mark = iota // Unoccupied cell
	BorderMark             // Decorative perimeter marker, unoccupied for play
	PegA                   // Peg of the vertical side
	PegB                   // Peg of the horizontal side
)

// String returns the string representation of a mark.
func (m Mark) String() string {
	names := []string{"Empty", "Border", "PegA", "PegB"}
	if int(m) >= 0 && int(m) < len(names) {
		return names[m]
	}
	return "Unknown"
}

// Symbol returns the single character used when printing the grid.
func (m Mark) Symbol() byte {
	symbols := []byte{'.', '-', 'A', 'B'}
	if int(m) >= 0 && int(m) < len(symbols) {
		return symbols[m]
	}
	return '?'
}

// IsPeg reports whether the mark is a peg of either side.
func (m Mark) IsPeg() bool {
	return m == PegA || m == PegB
}

// Side identifies a player. It is a boolean so that every asymmetric rule
// can branch on a single value.
type Side bool

const (
	Vertical   Side = true  // Connects the first and last row
	Horizontal Side = false // Connects the first and last column
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	return !s
}

// Peg returns the mark placed by the side.
func (s Side) Peg() Mark {
	if s == Vertical {
		return PegA
	}
	return PegB
}

// SideOf returns the owner of a peg mark; ok is false for non-peg marks.
func SideOf(m Mark) (side Side, ok bool) {
	switch m {
	case PegA:
		return Vertical, true
	case PegB:
		return Horizontal, true
	default:
		return Horizontal, false
	}
}

// ParseSide parses "vertical"/"horizontal" (or the "a"/"b", "v"/"h" shorthands).
func ParseSide(text string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "vertical", "v", "a":
		return Vertical, nil
	case "horizontal", "h", "b":
		return Horizontal, nil
	}
	return Horizontal, fmt.Errorf("unknown side %q: %w", text, errors.ErrInvalidConfig)
}

// Pos is a zero-based (row, col) index pair.
type Pos struct {
	Row int
	Col int
}

// Add returns the position offset by (dr, dc).
func (p Pos) Add(dr, dc int) Pos {
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns the taxicab distance between two positions.
func (p Pos) Manhattan(o Pos) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

// Move identifies a target cell by its row letter and column number.
type Move struct {
	Row string
	Col int
}

// String renders the move as row label followed by column number, e.g. "C3".
func (m Move) String() string {
	return m.Row + strconv.Itoa(m.Col)
}

// ParseMove parses text such as "C3" or "c 3" into a Move.
func ParseMove(text string) (Move, error) {
	s := strings.ToUpper(strings.Join(strings.Fields(text), ""))
	split := strings.IndexFunc(s, unicode.IsDigit)
	if split <= 0 {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidCoordinate)
	}
	row := s[:split]
	for _, r := range row {
		if r < 'A' || r > 'Z' {
			return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidCoordinate)
		}
	}
	col, err := strconv.Atoi(s[split:])
	if err != nil || col < 0 {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidCoordinate)
	}
	return Move{Row: row, Col: col}, nil
}

// Bridge is a knight-jump link between two same-side pegs.
type Bridge struct {
	From Pos
	To   Pos
}

// Slant returns '\' when the bridge runs top-left to bottom-right and '/'
// otherwise.
func (b Bridge) Slant() byte {
	if (b.To.Row-b.From.Row)*(b.To.Col-b.From.Col) > 0 {
		return '\\'
	}
	return '/'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
