// Package engine provides TWIXT legality checking, rules-gated placement on
// the live grid, immutable search states and move generation.
package engine

import (
	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/errors"
)

// supportDistance is how far inward a supporting peg sits from the final edge.
const supportDistance = 2

// Check returns nil if side may place a peg at (row, col), or the sentinel
// error of the first rule the cell fails. Checks run in order: bounds,
// occupancy, border restriction, winning-edge support.
func Check(p board.Position, side board.Side, row, col int) error {
	if !inBounds(p, row, col) {
		return errors.ErrOutOfBounds
	}
	if !IsEmpty(p, row, col) {
		return errors.ErrCellOccupied
	}
	if violatesBorder(p, side, row, col) {
		return errors.ErrBorderViolation
	}
	if !edgeSupported(p, side, row, col) {
		return errors.ErrUnsupportedWinningEdge
	}
	return nil
}

// IsLegal reports whether side may place a peg at (row, col).
func IsLegal(p board.Position, side board.Side, row, col int) bool {
	return Check(p, side, row, col) == nil
}

// IsLegalMove is IsLegal for a labelled move. Unknown labels are illegal.
func IsLegalMove(p board.Position, side board.Side, m board.Move) bool {
	pos, ok := p.Labels().Pos(m)
	return ok && IsLegal(p, side, pos.Row, pos.Col)
}

// CheckMove is Check for a labelled move. Unknown labels are out of bounds.
func CheckMove(p board.Position, side board.Side, m board.Move) (board.Pos, error) {
	pos, ok := p.Labels().Pos(m)
	if !ok {
		return board.Pos{}, errors.ErrOutOfBounds
	}
	return pos, Check(p, side, pos.Row, pos.Col)
}

// IsEmpty reports whether the cell is unoccupied. Border marks are
// decorative and count as empty. Out-of-bounds cells are not empty.
func IsEmpty(p board.Position, row, col int) bool {
	if !inBounds(p, row, col) {
		return false
	}
	m := p.At(row, col)
	return m == board.Empty || m == board.BorderMark
}

// Violations lists every rule the cell fails, in check order. An
// out-of-bounds cell reports only ErrOutOfBounds.
func Violations(p board.Position, side board.Side, row, col int) []error {
	if !inBounds(p, row, col) {
		return []error{errors.ErrOutOfBounds}
	}
	var out []error
	if !IsEmpty(p, row, col) {
		out = append(out, errors.ErrCellOccupied)
	}
	if violatesBorder(p, side, row, col) {
		out = append(out, errors.ErrBorderViolation)
	}
	if !edgeSupported(p, side, row, col) {
		out = append(out, errors.ErrUnsupportedWinningEdge)
	}
	return out
}

// EdgeWinner reports which side a peg at (row, col) wins for. Landing on the
// last column wins for horizontal, landing on the last row wins for
// vertical; the last-row check runs second and takes precedence at the
// corner.
func EdgeWinner(p board.Position, row, col int) (board.Side, bool) {
	var (
		winner  board.Side
		decided bool
	)
	if col == p.Cols()-1 {
		winner, decided = board.Horizontal, true
	}
	if row == p.Rows()-1 {
		winner, decided = board.Vertical, true
	}
	return winner, decided
}

func inBounds(p board.Position, row, col int) bool {
	return row >= 0 && col >= 0 && row < p.Rows() && col < p.Cols()
}

// violatesBorder applies the home-edge restriction: vertical may use the
// first or last column only on row 0, horizontal may use the first or last
// row only on column 0.
func violatesBorder(p board.Position, side board.Side, row, col int) bool {
	if side == board.Vertical {
		return row > 0 && (col == 0 || col == p.Cols()-1)
	}
	return col > 0 && (row == 0 || row == p.Rows()-1)
}

// edgeSupported applies the winning-edge rule: a peg on the side's final
// edge needs a same-side peg supportDistance inward at a lateral offset of
// ±supportDistance. Cells off the final edge are always supported.
func edgeSupported(p board.Position, side board.Side, row, col int) bool {
	peg := side.Peg()
	holds := func(r, c int) bool {
		return inBounds(p, r, c) && p.At(r, c) == peg
	}
	if side == board.Vertical {
		last := p.Rows() - 1
		if row != last {
			return true
		}
		inner := last - supportDistance
		return holds(inner, col-supportDistance) || holds(inner, col+supportDistance)
	}
	last := p.Cols() - 1
	if col != last {
		return true
	}
	inner := last - supportDistance
	return holds(row-supportDistance, inner) || holds(row+supportDistance, inner)
}
