// Package search implements the TWIXT move solver: depth-limited minimax
// with alpha-beta pruning, driven by iterative deepening under a deadline.
package search

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/engine"
	"github.com/lgbarn/twixt-go/internal/eval"
)

// Result describes the outcome of a search.
type Result struct {
	Move    board.Move
	Found   bool          // false means the solver recommends a pass
	Score   float64       // value of Move for the solving side
	Depth   int           // last depth that produced a move
	Nodes   int           // states visited across all depths
	Elapsed time.Duration // wall time as seen by the solver's clock
}

// Option configures a Solver.
type Option func(*Solver)

// WithPruning turns alpha-beta cut-offs on or off. With pruning off the
// solver runs plain minimax over the same tree.
func WithPruning(on bool) Option {
	return func(s *Solver) { s.pruning = on }
}

// WithOrdering turns the move-ordering heuristic on or off.
func WithOrdering(on bool) Option {
	return func(s *Solver) { s.ordering = on }
}

// WithClock replaces time.Now, for deadline tests.
func WithClock(now func() time.Time) Option {
	return func(s *Solver) { s.now = now }
}

// Solver picks moves for one side. A Solver is not safe for concurrent use;
// give each goroutine its own.
type Solver struct {
	me       board.Side
	pruning  bool
	ordering bool
	now      func() time.Time

	nodes int
}

// NewSolver returns a solver that plays for me.
func NewSolver(me board.Side, opts ...Option) *Solver {
	s := &Solver{
		me:       me,
		pruning:  true,
		ordering: true,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Side returns the side the solver plays for.
func (s *Solver) Side() board.Side { return s.me }

// Solve returns the best move found for root within maxTime and maxDepth,
// or false when the solver recommends a pass.
func (s *Solver) Solve(root engine.State, maxTime time.Duration, maxDepth int) (board.Move, bool) {
	res := s.Search(root, maxTime, maxDepth)
	return res.Move, res.Found
}

// Search runs iterative deepening from depth 1 to maxDepth. maxTime <= 0
// means no deadline. When the deadline passes mid-depth, whatever move that
// depth produced still replaces the previous best.
func (s *Solver) Search(root engine.State, maxTime time.Duration, maxDepth int) Result {
	start := s.now()
	var deadline time.Time
	if maxTime > 0 {
		deadline = start.Add(maxTime)
	}
	s.nodes = 0

	res := Result{Score: eval.Evaluate(root, s.me)}
	for depth := 1; depth <= maxDepth; depth++ {
		m, ok, val := s.searchDepth(root, depth, math.Inf(-1), math.Inf(1), deadline)
		if ok {
			res.Move, res.Found, res.Score, res.Depth = m, true, val, depth
		}
		log.Debug().
			Int("depth", depth).
			Bool("found", ok).
			Str("move", m.String()).
			Float64("score", val).
			Int("nodes", s.nodes).
			Msg("depth-complete")
		if s.expired(deadline) {
			log.Debug().Int("depth", depth).Msg("deadline-reached")
			break
		}
	}

	res.Nodes = s.nodes
	res.Elapsed = s.now().Sub(start)
	return res
}

// searchDepth returns the best move at state and its value for the solving
// side. The solving side maximizes; its opponent minimizes.
func (s *Solver) searchDepth(state engine.State, depth int, alpha, beta float64, deadline time.Time) (board.Move, bool, float64) {
	s.nodes++
	if depth == 0 || state.IsTerminal() || s.expired(deadline) {
		return board.Move{}, false, eval.Evaluate(state, s.me)
	}

	moves := engine.LegalMoves(state)
	if len(moves) == 0 {
		// The mover must pass.
		return board.Move{}, false, eval.Evaluate(state, s.me)
	}
	if s.ordering {
		moves = orderMoves(state, moves)
	}

	maximizing := state.Turn() == s.me
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	var (
		bestMove board.Move
		found    bool
	)

	for _, m := range moves {
		_, _, val := s.searchDepth(state.Apply(m), depth-1, alpha, beta, deadline)
		if maximizing {
			if val > best {
				best, bestMove, found = val, m, true
			}
			alpha = math.Max(alpha, best)
		} else {
			if val < best {
				best, bestMove, found = val, m, true
			}
			beta = math.Min(beta, best)
		}
		if s.pruning && beta <= alpha {
			break
		}
	}
	return bestMove, found, best
}

func (s *Solver) expired(deadline time.Time) bool {
	return !deadline.IsZero() && !s.now().Before(deadline)
}
