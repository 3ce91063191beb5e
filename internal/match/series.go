package match

import (
	"context"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/config"
	"github.com/lgbarn/twixt-go/internal/hashing"
	"github.com/lgbarn/twixt-go/internal/worker"
)

// SeriesResult summarizes a self-play series.
type SeriesResult struct {
	Games          int
	VerticalWins   int
	HorizontalWins int
	Draws          int
	FirstMoverWins int
	TotalPlies     int
	Duplicates     int
	UniqueFinals   int // distinct final positions, 0 without duplicate detection

	// Results holds one entry per game, in series order.
	Results []worker.ProcessResult
}

// AveragePlies returns the mean number of placements per game.
func (r SeriesResult) AveragePlies() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalPlies) / float64(r.Games)
}

// RunSeries plays cfg.Match.Games AI-vs-AI games on a worker pool. Each game
// gets its own grid and solvers. The first failing game stops the series,
// and so does cancelling ctx, in which case ctx's error is returned.
func RunSeries(ctx context.Context, cfg *config.Config) (SeriesResult, error) {
	if err := cfg.Validate(); err != nil {
		return SeriesResult{}, err
	}

	games := cfg.Match.Games
	workers := cfg.Match.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > games {
		workers = games
	}

	var detector *hashing.ThreadSafeDuplicateDetector
	if cfg.Match.DetectDuplicates {
		detector = hashing.NewThreadSafeDuplicateDetector(true, 0)
	}

	eg, ctx := errgroup.WithContext(ctx)
	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return playSeriesGame(ctx, cfg, item, detector)
	}, worker.WithWorkers(workers), worker.WithBufferSize(games))
	pool.Start()
	log.Debug().Int("games", games).Int("workers", pool.NumWorkers()).Msg("series-start")

	results := make([]worker.ProcessResult, games)

	eg.Go(func() error {
		defer pool.Close()
		for i := 0; i < games; i++ {
			item := worker.WorkItem{Index: i, First: StartingSide(cfg.Match, i)}
			if err := pool.Submit(ctx, item); err != nil {
				pool.Stop()
				return err
			}
		}
		return nil
	})

	eg.Go(func() error {
		var firstErr error
		for res := range pool.Results() {
			if res.Error != nil && firstErr == nil {
				firstErr = res.Error
				pool.Stop()
			}
			results[res.Index] = res
		}
		return firstErr
	})

	if err := eg.Wait(); err != nil {
		return SeriesResult{}, err
	}

	sr := SeriesResult{Games: games, Results: results}
	for _, res := range results {
		sr.TotalPlies += res.Plies
		switch {
		case !res.Decided:
			sr.Draws++
		case res.Winner == board.Vertical:
			sr.VerticalWins++
		default:
			sr.HorizontalWins++
		}
		if res.Decided && res.Winner == res.First {
			sr.FirstMoverWins++
		}
		if res.Duplicate {
			sr.Duplicates++
		}
	}
	if detector != nil {
		sr.UniqueFinals, _ = detector.Counts()
	}

	log.Info().
		Int("games", sr.Games).
		Int("vertical", sr.VerticalWins).
		Int("horizontal", sr.HorizontalWins).
		Int("draws", sr.Draws).
		Int("duplicates", sr.Duplicates).
		Float64("avg-plies", sr.AveragePlies()).
		Msg("series-complete")
	return sr, nil
}

// StartingSide picks who moves first in game i: random when configured,
// otherwise alternating from the configured side.
func StartingSide(m *config.MatchConfig, i int) board.Side {
	if m.RandomStart {
		return board.Side(frand.Intn(2) == 0)
	}
	first := board.Side(m.VerticalStarts)
	if i%2 == 1 {
		first = first.Opposite()
	}
	return first
}

func playSeriesGame(ctx context.Context, cfg *config.Config, item worker.WorkItem, detector *hashing.ThreadSafeDuplicateDetector) worker.ProcessResult {
	res := worker.ProcessResult{Index: item.Index, First: item.First}
	if err := ctx.Err(); err != nil {
		res.Error = err
		return res
	}

	g, err := cfg.Board.NewGrid()
	if err != nil {
		res.Error = err
		return res
	}
	game := NewGame(g,
		NewAIPlayer("vertical", cfg.Search),
		NewAIPlayer("horizontal", cfg.Search),
		item.First,
		cfg.Match.PlyLimit(g.Rows(), g.Cols()),
	)
	out, err := game.RunContext(ctx)
	if err != nil {
		res.Error = err
		return res
	}

	res.Winner = out.Winner
	res.Decided = out.Decided
	res.Plies = out.Plies
	res.Final = out.Final
	if detector != nil {
		res.Duplicate = detector.CheckAndAdd(out.Final, out.Plies)
	}

	log.Info().
		Int("game", item.Index).
		Str("first", item.First.String()).
		Bool("decided", out.Decided).
		Str("winner", out.Winner.String()).
		Int("plies", out.Plies).
		Msg("game-complete")
	return res
}
