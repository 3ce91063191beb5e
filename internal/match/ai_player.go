package match

import (
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/config"
	"github.com/lgbarn/twixt-go/internal/engine"
	"github.com/lgbarn/twixt-go/internal/search"
)

// AIPlayer chooses moves with a search.Solver playing for the side it is
// asked to move.
type AIPlayer struct {
	name string
	cfg  config.SearchConfig
	opts []search.Option
	last search.Result
}

// NewAIPlayer creates a solver-backed player. Extra options are passed to
// every solver it builds.
func NewAIPlayer(name string, cfg *config.SearchConfig, opts ...search.Option) *AIPlayer {
	base := []search.Option{
		search.WithPruning(cfg.Pruning),
		search.WithOrdering(cfg.Ordering),
	}
	return &AIPlayer{
		name: name,
		cfg:  *cfg,
		opts: append(base, opts...),
	}
}

// Name returns the player's name.
func (a *AIPlayer) Name() string { return a.name }

// IsHuman returns false.
func (a *AIPlayer) IsHuman() bool { return false }

// ChooseMove searches a snapshot of g with side to move.
func (a *AIPlayer) ChooseMove(g *board.Grid, side board.Side) (board.Move, bool) {
	solver := search.NewSolver(side, a.opts...)
	a.last = solver.Search(engine.FromGrid(g, side), a.cfg.MaxTime, a.cfg.MaxDepth)
	log.Debug().
		Str("player", a.name).
		Str("side", side.String()).
		Bool("found", a.last.Found).
		Str("move", a.last.Move.String()).
		Float64("score", a.last.Score).
		Int("depth", a.last.Depth).
		Int("nodes", a.last.Nodes).
		Dur("elapsed", a.last.Elapsed).
		Msg("ai-move")
	return a.last.Move, a.last.Found
}

// LastResult returns the result of the most recent search.
func (a *AIPlayer) LastResult() search.Result { return a.last }
