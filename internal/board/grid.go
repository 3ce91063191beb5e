package board

import (
	"fmt"

	"github.com/lgbarn/twixt-go/internal/errors"
)

// Board dimension limits.
const (
	MinSize     = 3
	MaxRowCount = 26 // Generated row labels are single letters
)

// Position is a read-only view of cell contents. Both the live Grid and
// search snapshots implement it, so rules are written once.
type Position interface {
	Labels() *Labels
	Rows() int
	Cols() int
	At(row, col int) Mark
}

// Labels maps between display labels and zero-based indices. A Labels value
// is immutable after construction and may be shared freely.
type Labels struct {
	rows   []string
	cols   []int
	rowIdx map[string]int
	colIdx map[int]int
}

// NewLabels builds a label table, rejecting short or duplicated label sets.
func NewLabels(rowLabels []string, colLabels []int) (*Labels, error) {
	if len(rowLabels) < MinSize || len(colLabels) < MinSize {
		return nil, fmt.Errorf("grid %dx%d smaller than %dx%d: %w",
			len(rowLabels), len(colLabels), MinSize, MinSize, errors.ErrInvalidConfig)
	}
	l := &Labels{
		rows:   append([]string(nil), rowLabels...),
		cols:   append([]int(nil), colLabels...),
		rowIdx: make(map[string]int, len(rowLabels)),
		colIdx: make(map[int]int, len(colLabels)),
	}
	for i, r := range l.rows {
		if _, dup := l.rowIdx[r]; dup {
			return nil, fmt.Errorf("duplicate row label %q: %w", r, errors.ErrInvalidConfig)
		}
		l.rowIdx[r] = i
	}
	for j, c := range l.cols {
		if _, dup := l.colIdx[c]; dup {
			return nil, fmt.Errorf("duplicate column label %d: %w", c, errors.ErrInvalidConfig)
		}
		l.colIdx[c] = j
	}
	return l, nil
}

// RowLabels returns letters A, B, ... for n rows.
func RowLabels(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n && i < MaxRowCount; i++ {
		out = append(out, string(rune('A'+i)))
	}
	return out
}

// ColLabels returns 1..n.
func ColLabels(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Rows returns the row labels in order.
func (l *Labels) Rows() []string { return append([]string(nil), l.rows...) }

// Cols returns the column labels in order.
func (l *Labels) Cols() []int { return append([]int(nil), l.cols...) }

// Pos converts a move to indices; ok is false when either label is unknown.
func (l *Labels) Pos(m Move) (p Pos, ok bool) {
	r, okRow := l.rowIdx[m.Row]
	c, okCol := l.colIdx[m.Col]
	if !okRow || !okCol {
		return Pos{}, false
	}
	return Pos{Row: r, Col: c}, true
}

// Move converts indices to a labelled move. p must be in bounds.
func (l *Labels) Move(p Pos) Move {
	return Move{Row: l.rows[p.Row], Col: l.cols[p.Col]}
}

// InBounds reports whether p addresses a cell of the grid.
func (l *Labels) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < len(l.rows) && p.Col < len(l.cols)
}

// Grid is the live game board. It is owned by the turn loop and is the only
// mutable copy of the game; the engine mutates it only after a legality check.
type Grid struct {
	labels  *Labels
	cells   [][]Mark
	winner  Side
	decided bool
}

// NewGrid creates a grid with the given labels and decorative border marks
// on every perimeter cell.
func NewGrid(rowLabels []string, colLabels []int) (*Grid, error) {
	labels, err := NewLabels(rowLabels, colLabels)
	if err != nil {
		return nil, err
	}
	g := &Grid{labels: labels}
	g.cells = make([][]Mark, len(labels.rows))
	for i := range g.cells {
		g.cells[i] = make([]Mark, len(labels.cols))
		for j := range g.cells[i] {
			if i == 0 || j == 0 || i == len(labels.rows)-1 || j == len(labels.cols)-1 {
				g.cells[i][j] = BorderMark
			}
		}
	}
	return g, nil
}

// NewGridSize creates a rows x cols grid labelled A.. and 1...
func NewGridSize(rows, cols int) (*Grid, error) {
	if rows > MaxRowCount {
		return nil, fmt.Errorf("%d rows exceeds %d: %w", rows, MaxRowCount, errors.ErrInvalidConfig)
	}
	return NewGrid(RowLabels(rows), ColLabels(cols))
}

// Labels returns the grid's label table.
func (g *Grid) Labels() *Labels { return g.labels }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.cells) }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return len(g.labels.cols) }

// At returns the mark at the given indices.
func (g *Grid) At(row, col int) Mark {
	return g.cells[row][col]
}

// Set writes a mark. Callers outside the engine should use engine.TryPlace.
func (g *Grid) Set(row, col int, m Mark) {
	g.cells[row][col] = m
}

// Winner returns the side that has won, if any.
func (g *Grid) Winner() (Side, bool) {
	return g.winner, g.decided
}

// SetWinner records the winner. The first recorded winner is kept.
func (g *Grid) SetWinner(s Side) {
	if g.decided {
		return
	}
	g.winner, g.decided = s, true
}

// Snapshot returns a copy of the cell matrix.
func (g *Grid) Snapshot() [][]Mark {
	out := make([][]Mark, len(g.cells))
	for i, row := range g.cells {
		out[i] = append([]Mark(nil), row...)
	}
	return out
}

// Count returns the number of cells holding m.
func (g *Grid) Count(m Mark) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == m {
				n++
			}
		}
	}
	return n
}
