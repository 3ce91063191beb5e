package engine

import (
	"fmt"

	"github.com/lgbarn/twixt-go/internal/board"
)

// State is an immutable snapshot used by the search. Every successor is a
// new value with its own cell copy, so sibling branches never observe each
// other's moves.
type State struct {
	labels  *board.Labels
	cells   [][]board.Mark
	turn    board.Side
	winner  board.Side
	decided bool
}

// FromGrid snapshots the live grid with the given side to move. The grid is
// not retained.
func FromGrid(g *board.Grid, turn board.Side) State {
	winner, decided := g.Winner()
	return State{
		labels:  g.Labels(),
		cells:   g.Snapshot(),
		turn:    turn,
		winner:  winner,
		decided: decided,
	}
}

// Labels returns the label table shared with the originating grid.
func (s State) Labels() *board.Labels { return s.labels }

// Rows returns the number of rows.
func (s State) Rows() int { return len(s.cells) }

// Cols returns the number of columns.
func (s State) Cols() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// At returns the mark at the given indices.
func (s State) At(row, col int) board.Mark { return s.cells[row][col] }

// Turn returns the side to move.
func (s State) Turn() board.Side { return s.turn }

// Winner returns the winning side, if the state is decided.
func (s State) Winner() (board.Side, bool) { return s.winner, s.decided }

// IsTerminal reports whether a winner has been determined.
func (s State) IsTerminal() bool { return s.decided }

// WithTurn returns the same position with another side to move.
func (s State) WithTurn(side board.Side) State {
	s.turn = side
	return s
}

// Apply places the mover's peg and returns the successor state with the
// turn flipped and the winner recomputed. The move must satisfy IsLegal;
// Apply panics otherwise, since an unvalidated move is a caller bug.
func (s State) Apply(m board.Move) State {
	pos, err := CheckMove(s, s.turn, m)
	if err != nil {
		panic(fmt.Sprintf("engine: Apply(%s) for %s: %v", m, s.turn, err))
	}
	return s.applyAt(pos)
}

// applyAt is Apply without the legality assertion; pos must be legal.
func (s State) applyAt(pos board.Pos) State {
	next := make([][]board.Mark, len(s.cells))
	for i, row := range s.cells {
		next[i] = append([]board.Mark(nil), row...)
	}
	next[pos.Row][pos.Col] = s.turn.Peg()

	out := State{
		labels: s.labels,
		cells:  next,
		turn:   s.turn.Opposite(),
	}
	if s.decided {
		out.winner, out.decided = s.winner, true
	} else {
		out.winner, out.decided = EdgeWinner(s, pos.Row, pos.Col)
	}
	return out
}

// Pieces returns the positions of a side's pegs in row-major order.
func (s State) Pieces(side board.Side) []board.Pos {
	return Pieces(s, side)
}

// Pieces returns the positions of a side's pegs in row-major order.
func Pieces(p board.Position, side board.Side) []board.Pos {
	peg := side.Peg()
	var out []board.Pos
	for i := 0; i < p.Rows(); i++ {
		for j := 0; j < p.Cols(); j++ {
			if p.At(i, j) == peg {
				out = append(out, board.Pos{Row: i, Col: j})
			}
		}
	}
	return out
}
