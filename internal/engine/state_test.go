package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/testutil"
)

// TestApply_SixBySixGame plays the short A-F x 1-6 line: vertical opens at
// A1, reaches C3 and D5, then lands on F3 with D5 supporting the edge.
func TestApply_SixBySixGame(t *testing.T) {
	g := testutil.MustEmptyGrid(t, 6, 6)
	s := FromGrid(g, board.Vertical)

	s = s.Apply(testutil.MustMove(t, "A1"))
	testutil.AssertEqual(t, s.Turn(), board.Horizontal)
	testutil.AssertFalse(t, s.IsTerminal())

	testutil.AssertFalse(t, IsLegalMove(s, board.Horizontal, testutil.MustMove(t, "F3")),
		"horizontal may not use the last row away from column 1")

	s = s.WithTurn(board.Vertical)
	s = s.Apply(testutil.MustMove(t, "C3"))
	s = s.WithTurn(board.Vertical)
	testutil.AssertFalse(t, IsLegalMove(s, board.Vertical, testutil.MustMove(t, "F3")),
		"F3 is unsupported before D5")
	s = s.Apply(testutil.MustMove(t, "D5"))
	s = s.WithTurn(board.Vertical)
	testutil.AssertTrue(t, IsLegalMove(s, board.Vertical, testutil.MustMove(t, "F3")))

	s = s.Apply(testutil.MustMove(t, "F3"))
	winner, ok := s.Winner()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, winner, board.Vertical)
	testutil.AssertTrue(t, s.IsTerminal())
	testutil.AssertEqual(t, len(LegalMoves(s)), 0)
}

func TestApply_Immutable(t *testing.T) {
	g := testutil.MustEmptyGrid(t, 6, 6)
	parent := FromGrid(g, board.Vertical)

	left := parent.Apply(testutil.MustMove(t, "A2"))
	right := parent.Apply(testutil.MustMove(t, "A3"))

	testutil.AssertEqual(t, parent.At(0, 1), board.BorderMark)
	testutil.AssertEqual(t, parent.At(0, 2), board.BorderMark)
	testutil.AssertEqual(t, left.At(0, 1), board.PegA)
	testutil.AssertEqual(t, left.At(0, 2), board.BorderMark)
	testutil.AssertEqual(t, right.At(0, 2), board.PegA)
	testutil.AssertEqual(t, parent.Turn(), board.Vertical)
	testutil.AssertEqual(t, g.At(0, 1), board.BorderMark, "the grid is not retained")
}

func TestFromGrid_CopiesCells(t *testing.T) {
	g := testutil.MustEmptyGrid(t, 5, 5)
	s := FromGrid(g, board.Horizontal)
	testutil.Put(t, g, board.Vertical, "C3")

	testutil.AssertEqual(t, s.At(2, 2), board.Empty)
	testutil.AssertEqual(t, s.Rows(), 5)
	testutil.AssertEqual(t, s.Cols(), 5)
	testutil.AssertEqual(t, s.Turn(), board.Horizontal)
}

func TestApply_TerminalCarriesForward(t *testing.T) {
	g := testutil.MustGrid(t, `
		- - - - - -
		- . . . . -
		- . . . . -
		- . . B A -
		- . . . . -
		- - - - - -
	`)
	s := FromGrid(g, board.Vertical).Apply(testutil.MustMove(t, "F3"))
	winner, ok := s.Winner()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, winner, board.Vertical)

	// B6 is a supported last-column peg, but the recorded winner stands.
	next := s.WithTurn(board.Horizontal).Apply(testutil.MustMove(t, "B6"))
	winner, ok = next.Winner()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, winner, board.Vertical)
}

func TestFromGrid_DecidedGrid(t *testing.T) {
	g := testutil.MustEmptyGrid(t, 5, 5)
	g.SetWinner(board.Horizontal)

	s := FromGrid(g, board.Vertical)
	winner, ok := s.Winner()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, winner, board.Horizontal)
	testutil.AssertEqual(t, len(LegalMoves(s)), 0)
}

func TestApply_PanicsOnIllegalMove(t *testing.T) {
	tests := []struct {
		name string
		move string
	}{
		{"occupied", "C3"},
		{"border", "C1"},
		{"unknown label", "Q9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustEmptyGrid(t, 6, 6)
			testutil.Put(t, g, board.Horizontal, "C3")
			s := FromGrid(g, board.Vertical)

			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Apply(%s) did not panic", tt.move)
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, tt.move) {
					t.Errorf("panic = %v, want message naming %s", r, tt.move)
				}
			}()
			s.Apply(testutil.MustMove(t, tt.move))
		})
	}
}

func TestPieces(t *testing.T) {
	g := testutil.MustGrid(t, `
		- - A - -
		- . . B -
		- A . . -
		B . . . -
		- - - - -
	`)
	s := FromGrid(g, board.Vertical)

	testutil.AssertEqual(t, s.Pieces(board.Vertical), []board.Pos{{Row: 0, Col: 2}, {Row: 2, Col: 1}})
	testutil.AssertEqual(t, Pieces(g, board.Horizontal), []board.Pos{{Row: 1, Col: 3}, {Row: 3, Col: 0}})
}

func TestWithTurn(t *testing.T) {
	s := FromGrid(testutil.MustEmptyGrid(t, 5, 5), board.Vertical)
	flipped := s.WithTurn(board.Horizontal)

	testutil.AssertEqual(t, s.Turn(), board.Vertical)
	testutil.AssertEqual(t, flipped.Turn(), board.Horizontal)
	testutil.AssertEqual(t, flipped.At(0, 0), s.At(0, 0))
}
