package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	twerrors "github.com/lgbarn/twixt-go/internal/errors"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGridSize(6, 6)
	if err != nil {
		t.Fatalf("NewGridSize(6, 6) error: %v", err)
	}

	t.Run("dimensions", func(t *testing.T) {
		if g.Rows() != 6 || g.Cols() != 6 {
			t.Errorf("size = %dx%d; want 6x6", g.Rows(), g.Cols())
		}
		if diff := cmp.Diff([]string{"A", "B", "C", "D", "E", "F"}, g.Labels().Rows()); diff != "" {
			t.Errorf("row labels mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6}, g.Labels().Cols()); diff != "" {
			t.Errorf("col labels mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("perimeter carries border marks", func(t *testing.T) {
		for i := 0; i < g.Rows(); i++ {
			for j := 0; j < g.Cols(); j++ {
				edge := i == 0 || j == 0 || i == g.Rows()-1 || j == g.Cols()-1
				want := Empty
				if edge {
					want = BorderMark
				}
				if got := g.At(i, j); got != want {
					t.Errorf("At(%d, %d) = %v; want %v", i, j, got, want)
				}
			}
		}
	})

	t.Run("no winner", func(t *testing.T) {
		if _, ok := g.Winner(); ok {
			t.Error("new grid reports a winner")
		}
	})
}

func TestNewGrid_Invalid(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		cols []int
	}{
		{"too few rows", []string{"A", "B"}, []int{1, 2, 3}},
		{"too few cols", []string{"A", "B", "C"}, []int{1}},
		{"duplicate row", []string{"A", "A", "C"}, []int{1, 2, 3}},
		{"duplicate col", []string{"A", "B", "C"}, []int{1, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.rows, tt.cols)
			if !errors.Is(err, twerrors.ErrInvalidConfig) {
				t.Errorf("NewGrid() error = %v; want ErrInvalidConfig", err)
			}
		})
	}

	if _, err := NewGridSize(27, 5); !errors.Is(err, twerrors.ErrInvalidConfig) {
		t.Errorf("NewGridSize(27, 5) error = %v; want ErrInvalidConfig", err)
	}
}

func TestLabels_PosAndMove(t *testing.T) {
	g, _ := NewGridSize(6, 6)
	l := g.Labels()

	p, ok := l.Pos(Move{Row: "C", Col: 3})
	if !ok || p != (Pos{Row: 2, Col: 2}) {
		t.Errorf("Pos(C3) = %v, %v; want {2 2}, true", p, ok)
	}
	if _, ok := l.Pos(Move{Row: "G", Col: 1}); ok {
		t.Error("Pos(G1) ok = true; want false")
	}
	if _, ok := l.Pos(Move{Row: "A", Col: 7}); ok {
		t.Error("Pos(A7) ok = true; want false")
	}
	if got := l.Move(Pos{Row: 5, Col: 0}); got != (Move{Row: "F", Col: 1}) {
		t.Errorf("Move({5 0}) = %v; want F1", got)
	}
}

func TestGrid_SetWinnerKeepsFirst(t *testing.T) {
	g, _ := NewGridSize(5, 5)
	g.SetWinner(Vertical)
	g.SetWinner(Horizontal)
	if s, ok := g.Winner(); !ok || s != Vertical {
		t.Errorf("Winner() = %v, %v; want vertical, true", s, ok)
	}
}

func TestGrid_SnapshotIsCopy(t *testing.T) {
	g, _ := NewGridSize(5, 5)
	snap := g.Snapshot()
	snap[2][2] = PegA
	if g.At(2, 2) != Empty {
		t.Error("mutating a snapshot changed the grid")
	}
}
