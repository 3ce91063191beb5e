// Package processing validates TWIXT move lists: each placement is checked
// against the rules and statistics are collected about the position reached.
// Move lists are input only; nothing is saved or resumed.
package processing

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/engine"
	"github.com/lgbarn/twixt-go/internal/errors"
	"github.com/lgbarn/twixt-go/internal/hashing"
	"github.com/lgbarn/twixt-go/internal/match"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	Final             *board.Grid
	Moves             []match.Ply
	Plies             int      // placements made
	Passes            int      // turns passed
	Positions         []uint64 // Zobrist hash after each placement
	VerticalPegs      int
	HorizontalPegs    int
	VerticalBridges   int
	HorizontalBridges int
	WinningPly        int // 1-based index into Moves of the winning placement, 0 if none
}

// Decided reports whether the replayed game has a winner.
func (ga *GameAnalysis) Decided() bool {
	_, decided := ga.Final.Winner()
	return decided
}

// Outcome converts the analysis into a game outcome for output.
func (ga *GameAnalysis) Outcome() match.Outcome {
	out := match.Outcome{
		Plies: ga.Plies,
		Moves: ga.Moves,
		Final: ga.Final,
		Hash:  hashing.Hash(ga.Final),
	}
	out.Winner, out.Decided = ga.Final.Winner()
	return out
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int // 1-based index into the move list, 0 when valid
	ErrorMsg string
	Err      error
}

// ParseMoveList reads a move list as written by the text output, e.g.
// "1. A1 B2 2. -- C3". Move numbers are skipped, "--" and "pass" pass the
// turn, and sides alternate starting with first.
func ParseMoveList(text string, first board.Side) ([]match.Ply, error) {
	var (
		plies []match.Ply
		side  = first
	)
	for _, tok := range strings.Fields(text) {
		if isMoveNumber(tok) {
			continue
		}
		p := match.Ply{Side: side}
		if tok == "--" || strings.EqualFold(tok, "pass") {
			p.Pass = true
		} else {
			m, err := board.ParseMove(tok)
			if err != nil {
				return nil, fmt.Errorf("ply %d: %w", len(plies)+1, err)
			}
			p.Move = m
		}
		plies = append(plies, p)
		side = side.Opposite()
	}
	return plies, nil
}

func isMoveNumber(tok string) bool {
	if len(tok) < 2 || tok[len(tok)-1] != '.' {
		return false
	}
	for _, r := range tok[:len(tok)-1] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// AnalyzeGame replays plies on g through the placement rules. Replay stops
// at the first rejected placement, which is reported in the validation
// result; the analysis then covers the plies before it.
func AnalyzeGame(g *board.Grid, plies []match.Ply) (*GameAnalysis, *ValidationResult) {
	analysis := &GameAnalysis{Final: g}
	result := &ValidationResult{Valid: true}
	z := hashing.ZobristFor(g.Rows(), g.Cols())
	h := z.Hash(g)

	for i, p := range plies {
		if p.Pass {
			analysis.Passes++
			analysis.Moves = append(analysis.Moves, p)
			continue
		}
		pos, err := engine.TryPlace(g, p.Side, p.Move)
		if err != nil {
			result.Valid = false
			result.ErrorPly = i + 1
			result.ErrorMsg = err.Error()
			result.Err = err
			break
		}
		analysis.Plies++
		analysis.Moves = append(analysis.Moves, p)
		h = z.Update(h, pos.Row, pos.Col, p.Side.Peg())
		analysis.Positions = append(analysis.Positions, h)
		if _, decided := g.Winner(); decided && analysis.WinningPly == 0 {
			analysis.WinningPly = i + 1
		}
	}

	analysis.VerticalPegs = g.Count(board.PegA)
	analysis.HorizontalPegs = g.Count(board.PegB)
	analysis.VerticalBridges = len(engine.Bridges(g, board.Vertical))
	analysis.HorizontalBridges = len(engine.Bridges(g, board.Horizontal))
	return analysis, result
}

// IsGameOverError reports whether a validation failure was a placement made
// after the game had already been won.
func (vr *ValidationResult) IsGameOverError() bool {
	return vr.Err != nil && stderrors.Is(vr.Err, errors.ErrGameOver)
}
