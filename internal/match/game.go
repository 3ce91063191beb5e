package match

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/engine"
	"github.com/lgbarn/twixt-go/internal/hashing"
)

// Ply is one turn of a game: a placement or a pass.
type Ply struct {
	Side board.Side
	Move board.Move
	Pass bool
}

// Outcome is the result of a finished game.
type Outcome struct {
	Winner  board.Side
	Decided bool // false for a draw
	Plies   int  // placements made
	Moves   []Ply
	Final   *board.Grid
	Hash    uint64 // Zobrist hash of the final position
}

// Game plays one game on a grid it owns.
type Game struct {
	grid     *board.Grid
	players  [2]Player // indexed by sideIndex
	first    board.Side
	maxPlies int

	// OnMove, if set, is called after every placement.
	OnMove func(side board.Side, m board.Move, g *board.Grid)

	// Illegal, if set, is called when a human's move is rejected; the human
	// is then asked again.
	Illegal func(side board.Side, m board.Move, err error)
}

// NewGame creates a game on g. maxPlies <= 0 means the grid's cell count.
func NewGame(g *board.Grid, vertical, horizontal Player, first board.Side, maxPlies int) *Game {
	if maxPlies <= 0 {
		maxPlies = g.Rows() * g.Cols()
	}
	return &Game{
		grid:     g,
		players:  [2]Player{vertical, horizontal},
		first:    first,
		maxPlies: maxPlies,
	}
}

// Grid returns the live grid.
func (g *Game) Grid() *board.Grid { return g.grid }

// Player returns the player for side.
func (g *Game) Player(side board.Side) Player { return g.players[sideIndex(side)] }

// Run alternates turns until a side wins, both sides pass in succession or
// the ply limit is reached. The last two end the game as a draw.
func (g *Game) Run() Outcome {
	out, _ := g.RunContext(context.Background())
	return out
}

// RunContext is Run stopped early when ctx is done. A cancelled game
// returns the position reached so far together with ctx.Err().
func (g *Game) RunContext(ctx context.Context) (Outcome, error) {
	var (
		out    Outcome
		turn   = g.first
		passes int
		err    error
	)

	for out.Plies < g.maxPlies {
		if err = ctx.Err(); err != nil {
			break
		}
		if _, decided := g.grid.Winner(); decided {
			break
		}
		p := g.Player(turn)
		m, ok := p.ChooseMove(g.grid, turn)
		if ok {
			_, err := engine.TryPlace(g.grid, turn, m)
			if err != nil && p.IsHuman() {
				if g.Illegal != nil {
					g.Illegal(turn, m, err)
				}
				continue
			}
			if err != nil {
				log.Warn().Err(err).Str("player", p.Name()).Msg("rejected-move")
				ok = false
			}
		}

		if !ok {
			log.Debug().Str("player", p.Name()).Str("side", turn.String()).Msg("pass")
			out.Moves = append(out.Moves, Ply{Side: turn, Pass: true})
			passes++
			if passes >= 2 {
				break
			}
			turn = turn.Opposite()
			continue
		}

		passes = 0
		out.Plies++
		out.Moves = append(out.Moves, Ply{Side: turn, Move: m})
		if g.OnMove != nil {
			g.OnMove(turn, m, g.grid)
		}
		turn = turn.Opposite()
	}

	out.Winner, out.Decided = g.grid.Winner()
	out.Final = g.grid
	out.Hash = hashing.Hash(g.grid)
	return out, err
}

func sideIndex(s board.Side) int {
	if s == board.Vertical {
		return 0
	}
	return 1
}
