// twixt plays TWIXT between humans and an alpha-beta solver, and runs
// parallel self-play series between solvers.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/config"
	"github.com/lgbarn/twixt-go/internal/errors"
	"github.com/lgbarn/twixt-go/internal/match"
	"github.com/lgbarn/twixt-go/internal/output"
	"github.com/lgbarn/twixt-go/internal/processing"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("twixt version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupLogger(cfg)

	if err := run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("twixt-failed")
		os.Exit(1)
	}
}

// run validates cfg and plays the game or series selected by -mode. Humans
// read moves from in and are prompted on prompt.
func run(ctx context.Context, cfg *config.Config, in io.Reader, prompt io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	prof, err := startProfile(*profileMode)
	if err != nil {
		return err
	}
	if prof != nil {
		defer prof.Stop()
	}

	switch {
	case *mode == "replay":
		return replayGame(cfg, in)
	case *mode == "eve" && cfg.Match.Games > 1:
		return runSeries(ctx, cfg)
	}

	vertical, horizontal, err := newPlayers(cfg, *mode, *humanSide, in, prompt)
	if err != nil {
		return err
	}
	return playGame(cfg, vertical, horizontal)
}

// newPlayers builds the two players for a single game.
func newPlayers(cfg *config.Config, mode, human string, in io.Reader, prompt io.Writer) (vertical, horizontal match.Player, err error) {
	switch mode {
	case "eve":
		return match.NewAIPlayer("vertical-ai", cfg.Search), match.NewAIPlayer("horizontal-ai", cfg.Search), nil

	case "pvp":
		sc := bufio.NewScanner(in)
		return match.NewHumanPlayerScanner("vertical", sc, prompt),
			match.NewHumanPlayerScanner("horizontal", sc, prompt), nil

	case "pve":
		side, err := board.ParseSide(human)
		if err != nil {
			return nil, nil, err
		}
		person := match.NewHumanPlayer("human", in, prompt)
		computer := match.NewAIPlayer("computer", cfg.Search)
		if side == board.Vertical {
			return person, computer, nil
		}
		return computer, person, nil
	}
	return nil, nil, fmt.Errorf("unknown mode %q: %w", mode, errors.ErrInvalidConfig)
}

// playGame plays one game and writes its record. Games with a human player
// show the grid after every move.
func playGame(cfg *config.Config, vertical, horizontal match.Player) error {
	g, err := cfg.Board.NewGrid()
	if err != nil {
		return err
	}

	first := match.StartingSide(cfg.Match, 0)
	game := match.NewGame(g, vertical, horizontal, first, cfg.Match.PlyLimit(g.Rows(), g.Cols()))

	if (vertical.IsHuman() || horizontal.IsHuman()) && !cfg.JSONFormat {
		w := cfg.OutputFile
		output.RenderGrid(w, g)
		game.OnMove = func(side board.Side, m board.Move, g *board.Grid) {
			fmt.Fprintf(w, "%s plays %s\n", game.Player(side).Name(), m)
			output.RenderGrid(w, g)
			output.WriteBridges(w, g)
		}
		game.Illegal = func(side board.Side, m board.Move, err error) {
			fmt.Fprintf(w, "illegal move %s for %s: %v\n", m, side, err)
		}
	}

	start := time.Now()
	out := game.Run()
	log.Info().
		Str("first", first.String()).
		Bool("decided", out.Decided).
		Str("winner", out.Winner.String()).
		Int("plies", out.Plies).
		Dur("elapsed", time.Since(start)).
		Msg("game-complete")

	return writeGame(cfg, out)
}

// replayGame validates a move list read from in: every ply is checked
// against the placement rules from the configured first side, and the
// resulting record is written. Nothing is stored between runs.
func replayGame(cfg *config.Config, in io.Reader) error {
	text, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "read move list")
	}
	g, err := cfg.Board.NewGrid()
	if err != nil {
		return err
	}
	plies, err := processing.ParseMoveList(string(text), match.StartingSide(cfg.Match, 0))
	if err != nil {
		return err
	}

	analysis, result := processing.AnalyzeGame(g, plies)
	if !result.Valid {
		if result.IsGameOverError() {
			return errors.Wrapf(result.Err, "replay ply %d: move after the game was won", result.ErrorPly)
		}
		return errors.Wrapf(result.Err, "replay ply %d", result.ErrorPly)
	}
	log.Info().
		Int("plies", analysis.Plies).
		Int("passes", analysis.Passes).
		Int("winning-ply", analysis.WinningPly).
		Int("vertical-bridges", analysis.VerticalBridges).
		Int("horizontal-bridges", analysis.HorizontalBridges).
		Msg("replay-complete")

	return writeGame(cfg, analysis.Outcome())
}

// writeGame writes one game record in the configured format.
func writeGame(cfg *config.Config, out match.Outcome) error {
	writer := output.NewGameWriter(cfg.OutputFile, cfg.JSONFormat)
	if err := writer.WriteGame(out); err != nil {
		return err
	}
	return writer.Close()
}

// runSeries plays a self-play series and writes its summary.
func runSeries(ctx context.Context, cfg *config.Config) error {
	sr, err := match.RunSeries(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.JSONFormat {
		return output.OutputSeriesJSON(cfg.OutputFile, sr)
	}
	output.WriteSeries(cfg.OutputFile, sr)
	return nil
}

// startProfile starts the profiler selected by mode; "" disables profiling.
func startProfile(mode string) (interface{ Stop() }, error) {
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook), nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook), nil
	}
	return nil, fmt.Errorf("unknown profile mode %q: %w", mode, errors.ErrInvalidConfig)
}

// setupLogger points the global logger at cfg.LogFile with a level taken
// from cfg.Verbosity.
func setupLogger(cfg *config.Config) {
	log.Logger = newLogger(cfg.LogFile, cfg.Verbosity)
}

// newLogger returns a console logger: verbosity 0 logs warnings, 1 game
// results, 2 every solver depth.
func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case verbosity <= 0:
		level = zerolog.WarnLevel
	case verbosity >= 2:
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: w != os.Stderr}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: twixt [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play TWIXT on a labelled grid against people or an alpha-beta solver.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (-mode):\n")
	fmt.Fprintf(os.Stderr, "  pve     Human against the solver (default)\n")
	fmt.Fprintf(os.Stderr, "  pvp     Two humans sharing standard input\n")
	fmt.Fprintf(os.Stderr, "  eve     Solver against solver; -games N plays a parallel series\n")
	fmt.Fprintf(os.Stderr, "  replay  Validate a move list read from standard input\n")
	fmt.Fprintf(os.Stderr, "\nMoves are a row letter and a column number, e.g. C3. Type 'pass' to pass.\n")
}
