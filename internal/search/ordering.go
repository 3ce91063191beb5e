package search

import (
	"sort"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/engine"
)

// orderMoves sorts candidates so that moves reaching further towards the
// mover's final edge, and moves close to its existing pegs, come first.
// The sort is stable: ties keep generation order.
func orderMoves(state engine.State, moves []board.Move) []board.Move {
	own := state.Pieces(state.Turn())
	labels := state.Labels()

	type scored struct {
		move board.Move
		hint float64
	}
	list := make([]scored, 0, len(moves))
	for _, m := range moves {
		pos, ok := labels.Pos(m)
		if !ok {
			continue
		}
		list = append(list, scored{m, hint(state.Turn(), pos, own)})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].hint > list[j].hint
	})

	out := make([]board.Move, len(list))
	for i, sc := range list {
		out[i] = sc.move
	}
	return out
}

// hint is the progress index of pos for side plus the largest 1/distance
// to one of the side's pegs.
func hint(side board.Side, pos board.Pos, own []board.Pos) float64 {
	progress := pos.Row
	if side == board.Horizontal {
		progress = pos.Col
	}
	var near float64
	for _, p := range own {
		d := pos.Manhattan(p)
		if d == 0 {
			continue
		}
		if v := 1 / float64(d); v > near {
			near = v
		}
	}
	return float64(progress) + near
}
