package testutil

import (
	"testing"

	"github.com/lgbarn/twixt-go/internal/board"
)

func TestMustGrid(t *testing.T) {
	g := MustGrid(t, `
		- - - - -
		- A . . -
		- . . B -
		- . . . -
		- - - - -
	`)

	if g.Rows() != 5 || g.Cols() != 5 {
		t.Fatalf("size = %dx%d, want 5x5", g.Rows(), g.Cols())
	}
	if g.At(1, 1) != board.PegA {
		t.Errorf("At(1, 1) = %v, want PegA", g.At(1, 1))
	}
	if g.At(2, 3) != board.PegB {
		t.Errorf("At(2, 3) = %v, want PegB", g.At(2, 3))
	}
	if g.At(0, 2) != board.BorderMark {
		t.Errorf("At(0, 2) = %v, want BorderMark", g.At(0, 2))
	}
	if g.At(3, 2) != board.Empty {
		t.Errorf("At(3, 2) = %v, want Empty", g.At(3, 2))
	}
}

func TestPutAndMoves(t *testing.T) {
	g := MustEmptyGrid(t, 6, 6)
	Put(t, g, board.Horizontal, "D5")
	if g.At(3, 4) != board.PegB {
		t.Errorf("At(3, 4) = %v, want PegB", g.At(3, 4))
	}
	AssertEqual(t, Moves(t, "A1 c3"), []board.Move{{Row: "A", Col: 1}, {Row: "C", Col: 3}})
}
