package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/errors"
	"github.com/lgbarn/twixt-go/internal/testutil"
)

func TestTryPlace(t *testing.T) {
	g := testutil.MustEmptyGrid(t, 6, 6)

	pos, err := TryPlace(g, board.Vertical, testutil.MustMove(t, "A1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos, board.Pos{Row: 0, Col: 0})
	testutil.AssertEqual(t, g.At(0, 0), board.PegA)

	_, decided := g.Winner()
	testutil.AssertFalse(t, decided)
}

func TestTryPlace_Rejections(t *testing.T) {
	tests := []struct {
		name string
		side board.Side
		move string
		want error
	}{
		{"unknown row", board.Vertical, "G2", errors.ErrOutOfBounds},
		{"unknown column", board.Vertical, "B9", errors.ErrOutOfBounds},
		{"occupied", board.Horizontal, "C3", errors.ErrCellOccupied},
		{"border", board.Horizontal, "F3", errors.ErrBorderViolation},
		{"unsupported edge", board.Vertical, "F2", errors.ErrUnsupportedWinningEdge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustEmptyGrid(t, 6, 6)
			testutil.Put(t, g, board.Vertical, "C3")
			before := g.Snapshot()

			_, err := TryPlace(g, tt.side, testutil.MustMove(t, tt.move))
			testutil.AssertErrorIs(t, err, tt.want)

			var pe *errors.PlacementError
			if !stderrors.As(err, &pe) {
				t.Fatalf("TryPlace error %T is not a *PlacementError", err)
			}
			testutil.AssertEqual(t, pe.Move, tt.move)
			testutil.AssertEqual(t, pe.Side, tt.side.String())
			testutil.AssertEqual(t, pe.Ply, 2)
			testutil.AssertEqual(t, g.Snapshot(), before, "grid must be unchanged")
		})
	}
}

func TestTryPlace_RecordsWinner(t *testing.T) {
	g := testutil.MustGrid(t, `
		- - - - - -
		- . . B . -
		- . . . . -
		- . . . A -
		- . . . . -
		- - - - - -
	`)

	_, err := TryPlace(g, board.Horizontal, testutil.MustMove(t, "D6"))
	testutil.AssertNoError(t, err)
	winner, decided := g.Winner()
	testutil.AssertTrue(t, decided)
	testutil.AssertEqual(t, winner, board.Horizontal)

	_, err = TryPlace(g, board.Vertical, testutil.MustMove(t, "F3"))
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
	testutil.AssertEqual(t, g.At(5, 2), board.BorderMark)
}

func TestTryPlace_SixBySixGame(t *testing.T) {
	g := testutil.MustEmptyGrid(t, 6, 6)
	steps := []struct {
		side board.Side
		move string
		want error
	}{
		{board.Vertical, "A1", nil},
		{board.Horizontal, "F3", errors.ErrBorderViolation},
		{board.Vertical, "C3", nil},
		{board.Vertical, "F3", errors.ErrUnsupportedWinningEdge},
		{board.Vertical, "D5", nil},
		{board.Vertical, "F3", nil},
	}
	for i, step := range steps {
		_, err := TryPlace(g, step.side, testutil.MustMove(t, step.move))
		if !stderrors.Is(err, step.want) {
			t.Fatalf("step %d: TryPlace(%s, %s) = %v, want %v", i, step.side, step.move, err, step.want)
		}
	}
	winner, decided := g.Winner()
	testutil.AssertTrue(t, decided)
	testutil.AssertEqual(t, winner, board.Vertical)
}
