package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/twixt-go/internal/board"
)

// MustGrid builds a grid from a text diagram, one line per row and one
// whitespace-separated token per cell. "A" places a vertical peg, "B" a
// horizontal peg; "." and "-" keep the cell as constructed (empty or
// border). Blank lines are ignored. It calls t.Fatal on a malformed diagram.
func MustGrid(t *testing.T, diagram string) *board.Grid {
	t.Helper()
	var rows [][]string
	for _, line := range strings.Split(diagram, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			rows = append(rows, fields)
		}
	}
	if len(rows) == 0 {
		t.Fatalf("empty grid diagram")
	}
	g, err := board.NewGridSize(len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("NewGridSize(%d, %d): %v", len(rows), len(rows[0]), err)
	}
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			t.Fatalf("diagram row %d has %d cells, want %d", i, len(row), len(rows[0]))
		}
		for j, cell := range row {
			switch cell {
			case "A":
				g.Set(i, j, board.PegA)
			case "B":
				g.Set(i, j, board.PegB)
			case ".", "-":
			default:
				t.Fatalf("diagram cell %q at (%d, %d) is not one of A B . -", cell, i, j)
			}
		}
	}
	return g
}

// MustEmptyGrid returns a rows x cols grid with only border marks.
func MustEmptyGrid(t *testing.T, rows, cols int) *board.Grid {
	t.Helper()
	g, err := board.NewGridSize(rows, cols)
	if err != nil {
		t.Fatalf("NewGridSize(%d, %d): %v", rows, cols, err)
	}
	return g
}

// Put writes a peg at the cell named by text (e.g. "C3") without any rule
// checks. Use it to arrange fixtures that play could not reach directly.
func Put(t *testing.T, g *board.Grid, side board.Side, text string) {
	t.Helper()
	m := MustMove(t, text)
	p, ok := g.Labels().Pos(m)
	if !ok {
		t.Fatalf("move %s is outside the grid", text)
	}
	g.Set(p.Row, p.Col, side.Peg())
}

// MustMove parses move text, calling t.Fatal on failure.
func MustMove(t *testing.T, text string) board.Move {
	t.Helper()
	m, err := board.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

// Moves parses a space-separated list of move texts.
func Moves(t *testing.T, texts string) []board.Move {
	t.Helper()
	var out []board.Move
	for _, f := range strings.Fields(texts) {
		out = append(out, MustMove(t, f))
	}
	return out
}
