// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"time"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/config"
)

var (
	// Board options
	rows = flag.Int("rows", config.DefaultRows, "Number of rows (5-26)")
	cols = flag.Int("cols", config.DefaultCols, "Number of columns (5-99)")

	// Search options
	depth      = flag.Int("depth", 4, "Maximum search depth")
	moveTime   = flag.Duration("time", time.Second, "Search time per move (0 = no limit)")
	noPruning  = flag.Bool("nopruning", false, "Disable alpha-beta pruning (plain minimax)")
	noOrdering = flag.Bool("noordering", false, "Disable move ordering")

	// Game options
	mode        = flag.String("mode", "pve", "Game mode: pve, pvp, eve, replay")
	humanSide   = flag.String("human", "vertical", "Side played by the human in pve mode: vertical, horizontal")
	firstSide   = flag.String("first", "vertical", "Side that moves first: vertical, horizontal")
	randomStart = flag.Bool("random", false, "Pick the starting side at random")
	maxPlies    = flag.Int("maxplies", 0, "Declare a draw after N plies (0 = rows*cols)")

	// Self-play series
	games        = flag.Int("games", 1, "Number of AI-vs-AI games in eve mode")
	workers      = flag.Int("workers", 0, "Number of games played in parallel (0 = auto-detect based on CPU cores)")
	noDuplicates = flag.Bool("noduplicates", false, "Don't count games ending in the same position")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Output results in JSON format")
	logFile    = flag.String("l", "", "Write logs to file (default: stderr)")

	// Diagnostics
	profileMode = flag.String("profile", "", "Write a profile to the current directory: cpu, mem")
	verbose     = flag.Bool("v", false, "Verbose: log every solver depth")
	quiet       = flag.Bool("q", false, "Quiet: log warnings only")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyBoardFlags(cfg)
	applySearchFlags(cfg)
	if err := applyMatchFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	return nil
}

// applyBoardFlags configures the grid size.
func applyBoardFlags(cfg *config.Config) {
	cfg.Board.Rows = *rows
	cfg.Board.Cols = *cols
}

// applySearchFlags configures the solver limits.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.MaxDepth = *depth
	cfg.Search.MaxTime = *moveTime
	cfg.Search.Pruning = !*noPruning
	cfg.Search.Ordering = !*noOrdering
}

// applyMatchFlags configures who starts and how long games and series run.
func applyMatchFlags(cfg *config.Config) error {
	first, err := board.ParseSide(*firstSide)
	if err != nil {
		return err
	}
	cfg.Match.VerticalStarts = first == board.Vertical
	cfg.Match.RandomStart = *randomStart
	cfg.Match.MaxPlies = *maxPlies
	cfg.Match.Games = *games
	cfg.Match.Workers = *workers
	cfg.Match.DetectDuplicates = !*noDuplicates
	return nil
}

// applyOutputFlags configures output format and verbosity.
func applyOutputFlags(cfg *config.Config) {
	cfg.JSONFormat = *jsonOutput
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}
