package engine

import "github.com/lgbarn/twixt-go/internal/board"

// BridgeOffsets are the (row, col) jumps that link two pegs, in the order
// move generation visits them.
var BridgeOffsets = [4][2]int{{-2, -2}, {2, -2}, {-2, 2}, {2, 2}}

// LegalMoves returns the candidate moves for the side to move. A terminal
// state has none. Focused generation is tried first; the full-board scan is
// only a fallback when it yields nothing. An empty result means the mover
// must pass.
func LegalMoves(s State) []board.Move {
	if s.IsTerminal() {
		return nil
	}
	if moves := FocusedMoves(s); len(moves) > 0 {
		return moves
	}
	return AllLegalMoves(s)
}

// FocusedMoves returns opening cells on the mover's home edge when it has no
// pegs yet, otherwise the legal bridge jumps from its pegs, deduplicated in
// discovery order.
func FocusedMoves(s State) []board.Move {
	side := s.Turn()
	own := s.Pieces(side)
	labels := s.Labels()

	var out []board.Move
	if len(own) == 0 {
		if side == board.Vertical {
			for j := 0; j < s.Cols(); j++ {
				if IsLegal(s, side, 0, j) {
					out = append(out, labels.Move(board.Pos{Row: 0, Col: j}))
				}
			}
		} else {
			for i := 0; i < s.Rows(); i++ {
				if IsLegal(s, side, i, 0) {
					out = append(out, labels.Move(board.Pos{Row: i, Col: 0}))
				}
			}
		}
		return out
	}

	seen := make(map[board.Pos]bool, len(own)*len(BridgeOffsets))
	for _, p := range own {
		for _, d := range BridgeOffsets {
			n := p.Add(d[0], d[1])
			if seen[n] || !IsLegal(s, side, n.Row, n.Col) {
				continue
			}
			seen[n] = true
			out = append(out, labels.Move(n))
		}
	}
	return out
}

// AllLegalMoves scans every cell in row-major order and keeps the legal ones.
func AllLegalMoves(s State) []board.Move {
	side := s.Turn()
	labels := s.Labels()
	var out []board.Move
	for i := 0; i < s.Rows(); i++ {
		for j := 0; j < s.Cols(); j++ {
			if IsLegal(s, side, i, j) {
				out = append(out, labels.Move(board.Pos{Row: i, Col: j}))
			}
		}
	}
	return out
}
