// Package eval scores TWIXT states from one side's point of view.
package eval

import (
	"math"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/engine"
)

// Feature weights.
const (
	ProgressWeight     = 2.0
	MaterialWeight     = 0.5
	ConnectivityWeight = 0.3
	CentralityWeight   = 0.2
	MobilityWeight     = 0.15

	// MobilityScale is the move count that saturates the mobility term.
	MobilityScale = 100.0

	// WinScore is returned for a decided state; the loser gets -WinScore.
	WinScore = 1e9
)

// Features are the per-side measurements the score is built from.
type Features struct {
	Progress     float64 // furthest reach towards the final edge, in [0, 1]
	Material     float64 // peg count
	Connectivity float64 // bridge count
	Centrality   float64 // mean 1/(1+distance) to the board centre
	Mobility     int     // legal move count with this side to move
}

// Evaluate returns the heuristic value of s for me. Decided states score
// ±WinScore; everything else is Score of both sides' features.
func Evaluate(s engine.State, me board.Side) float64 {
	if winner, ok := s.Winner(); ok {
		if winner == me {
			return WinScore
		}
		return -WinScore
	}
	return Score(Extract(s, me), Extract(s, me.Opposite()))
}

// Score combines the features of the scoring side (mine) and its opponent.
func Score(mine, theirs Features) float64 {
	return ProgressWeight*(mine.Progress-theirs.Progress) +
		MaterialWeight*(mine.Material-theirs.Material) +
		ConnectivityWeight*(mine.Connectivity-theirs.Connectivity) +
		CentralityWeight*(mine.Centrality-theirs.Centrality) +
		MobilityWeight*(NormalizeMobility(mine.Mobility)-NormalizeMobility(theirs.Mobility))
}

// Extract measures side's features in s.
func Extract(s engine.State, side board.Side) Features {
	pegs := s.Pieces(side)
	return Features{
		Progress:     progress(s, side, pegs),
		Material:     float64(len(pegs)),
		Connectivity: float64(engine.Links(s, side)) / 2,
		Centrality:   centrality(s, pegs),
		Mobility:     len(engine.LegalMoves(s.WithTurn(side))),
	}
}

// NormalizeMobility maps a move count onto [0, 1].
func NormalizeMobility(m int) float64 {
	return math.Min(1, float64(m)/MobilityScale)
}

func progress(s engine.State, side board.Side, pegs []board.Pos) float64 {
	if len(pegs) == 0 {
		return 0
	}
	furthest, span := 0, s.Rows()-1
	if side == board.Horizontal {
		span = s.Cols() - 1
	}
	for _, p := range pegs {
		reach := p.Row
		if side == board.Horizontal {
			reach = p.Col
		}
		if reach > furthest {
			furthest = reach
		}
	}
	return float64(furthest) / float64(span)
}

func centrality(s engine.State, pegs []board.Pos) float64 {
	if len(pegs) == 0 {
		return 0
	}
	cy := float64(s.Rows()-1) / 2
	cx := float64(s.Cols()-1) / 2
	var total float64
	for _, p := range pegs {
		dist := math.Abs(float64(p.Row)-cy) + math.Abs(float64(p.Col)-cx)
		total += 1 / (1 + dist)
	}
	return total / float64(len(pegs))
}
