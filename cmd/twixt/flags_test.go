package main

import (
	"testing"
	"time"

	"github.com/lgbarn/twixt-go/internal/config"
	"github.com/lgbarn/twixt-go/internal/errors"
	"github.com/lgbarn/twixt-go/internal/testutil"
)

// saveRestoreBool is a helper to save and defer-restore a bool flag pointer.
// Usage: defer saveRestoreBool(quiet, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreDuration(ptr *time.Duration, val time.Duration) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyBoardFlags / applySearchFlags
// ---------------------------------------------------------------------------

func TestApplyBoardFlags(t *testing.T) {
	defer saveRestoreInt(rows, 8)()
	defer saveRestoreInt(cols, 10)()

	cfg := config.NewConfig()
	applyBoardFlags(cfg)
	testutil.AssertEqual(t, cfg.Board.Rows, 8)
	testutil.AssertEqual(t, cfg.Board.Cols, 10)
}

func TestApplySearchFlags(t *testing.T) {
	tests := []struct {
		name         string
		noPrune      bool
		noOrder      bool
		wantPruning  bool
		wantOrdering bool
	}{
		{"defaults", false, false, true, true},
		{"minimax", true, false, false, true},
		{"unordered", false, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(depth, 3)()
			defer saveRestoreDuration(moveTime, 250*time.Millisecond)()
			defer saveRestoreBool(noPruning, tt.noPrune)()
			defer saveRestoreBool(noOrdering, tt.noOrder)()

			cfg := config.NewConfig()
			applySearchFlags(cfg)
			testutil.AssertEqual(t, cfg.Search.MaxDepth, 3)
			testutil.AssertEqual(t, cfg.Search.MaxTime, 250*time.Millisecond)
			testutil.AssertEqual(t, cfg.Search.Pruning, tt.wantPruning)
			testutil.AssertEqual(t, cfg.Search.Ordering, tt.wantOrdering)
		})
	}
}

// ---------------------------------------------------------------------------
// applyMatchFlags
// ---------------------------------------------------------------------------

func TestApplyMatchFlags(t *testing.T) {
	t.Run("horizontal first series", func(t *testing.T) {
		defer saveRestoreString(firstSide, "h")()
		defer saveRestoreBool(randomStart, true)()
		defer saveRestoreInt(maxPlies, 40)()
		defer saveRestoreInt(games, 8)()
		defer saveRestoreInt(workers, 2)()
		defer saveRestoreBool(noDuplicates, true)()

		cfg := config.NewConfig()
		testutil.AssertNoError(t, applyMatchFlags(cfg))
		testutil.AssertFalse(t, cfg.Match.VerticalStarts)
		testutil.AssertTrue(t, cfg.Match.RandomStart)
		testutil.AssertEqual(t, cfg.Match.MaxPlies, 40)
		testutil.AssertEqual(t, cfg.Match.Games, 8)
		testutil.AssertEqual(t, cfg.Match.Workers, 2)
		testutil.AssertFalse(t, cfg.Match.DetectDuplicates)
	})

	t.Run("unknown side", func(t *testing.T) {
		defer saveRestoreString(firstSide, "diagonal")()
		cfg := config.NewConfig()
		testutil.AssertErrorIs(t, applyMatchFlags(cfg), errors.ErrInvalidConfig)
	})
}

// ---------------------------------------------------------------------------
// applyOutputFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		json    bool
		want    int
	}{
		{"default", false, false, false, 1},
		{"quiet", true, false, false, 0},
		{"verbose", false, true, true, 2},
		{"quiet wins", true, true, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			defer saveRestoreBool(jsonOutput, tt.json)()

			cfg := config.NewConfig()
			applyOutputFlags(cfg)
			testutil.AssertEqual(t, cfg.Verbosity, tt.want)
			testutil.AssertEqual(t, cfg.JSONFormat, tt.json)
		})
	}
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))
	testutil.AssertNoError(t, cfg.Validate())
	testutil.AssertEqual(t, cfg.Board.Rows, config.DefaultRows)
	testutil.AssertTrue(t, cfg.Match.VerticalStarts)
}
