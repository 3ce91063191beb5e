package engine

import (
	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/errors"
)

// TryPlace is the only way the live grid changes. It re-checks legality,
// writes the side's peg and records a winner when the peg lands on the last
// column (horizontal) or last row (vertical). Failures are returned as a
// *errors.PlacementError wrapping the rule's sentinel; the grid is left
// untouched.
func TryPlace(g *board.Grid, side board.Side, m board.Move) (board.Pos, error) {
	fail := func(err error) (board.Pos, error) {
		return board.Pos{}, &errors.PlacementError{
			Err:  err,
			Side: side.String(),
			Move: m.String(),
			Ply:  g.Count(board.PegA) + g.Count(board.PegB) + 1,
		}
	}

	if _, decided := g.Winner(); decided {
		return fail(errors.ErrGameOver)
	}
	pos, err := CheckMove(g, side, m)
	if err != nil {
		return fail(err)
	}

	g.Set(pos.Row, pos.Col, side.Peg())
	if winner, ok := EdgeWinner(g, pos.Row, pos.Col); ok {
		g.SetWinner(winner)
	}
	return pos, nil
}
