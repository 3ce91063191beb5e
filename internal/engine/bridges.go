package engine

import "github.com/lgbarn/twixt-go/internal/board"

// Bridges lists every pair of the side's pegs that sit a bridge apart. Each
// pair appears once, ordered by its first peg in row-major order.
func Bridges(p board.Position, side board.Side) []board.Bridge {
	peg := side.Peg()
	var out []board.Bridge
	for _, from := range Pieces(p, side) {
		// Only look forward (downward rows) so each pair is reported once.
		for _, d := range [2][2]int{{2, -2}, {2, 2}} {
			to := from.Add(d[0], d[1])
			if inBounds(p, to.Row, to.Col) && p.At(to.Row, to.Col) == peg {
				out = append(out, board.Bridge{From: from, To: to})
			}
		}
	}
	return out
}

// Links counts bridge endpoints: each bridge is seen once from each end.
func Links(p board.Position, side board.Side) int {
	return 2 * len(Bridges(p, side))
}
