package match

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/config"
	"github.com/lgbarn/twixt-go/internal/testutil"
)

func TestHumanPlayer_ChooseMove(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		played bool
	}{
		{"plain", "C3\n", "C3", true},
		{"lower case and spaces", "  c 3 \n", "C3", true},
		{"blank lines re-prompt", "\n\nB4\n", "B4", true},
		{"bad text re-prompts", "ZZ\n3C\nD2\n", "D2", true},
		{"pass", "pass\n", "", false},
		{"pass any case", "PASS\n", "", false},
		{"end of input", "", "", false},
	}
	g := testutil.MustEmptyGrid(t, 6, 6)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prompt bytes.Buffer
			h := NewHumanPlayer("alice", strings.NewReader(tt.input), &prompt)

			m, ok := h.ChooseMove(g, board.Vertical)
			testutil.AssertEqual(t, ok, tt.played)
			if ok {
				testutil.AssertEqual(t, m.String(), tt.want)
			}
			testutil.AssertTrue(t, strings.HasPrefix(prompt.String(), "alice (vertical) move: "),
				"prompt %q", prompt.String())
		})
	}
}

func TestHumanPlayer_ReportsParseErrors(t *testing.T) {
	var prompt bytes.Buffer
	h := NewHumanPlayer("bob", strings.NewReader("??\nA1\n"), &prompt)

	_, ok := h.ChooseMove(testutil.MustEmptyGrid(t, 6, 6), board.Horizontal)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, strings.Count(prompt.String(), "bob (horizontal) move: "), 2)
	testutil.AssertTrue(t, strings.Contains(prompt.String(), `"??"`), "prompt %q", prompt.String())
}

func TestHumanPlayer_NilPrompt(t *testing.T) {
	h := NewHumanPlayer("carol", strings.NewReader("A2\n"), nil)
	testutil.AssertEqual(t, h.Name(), "carol")
	testutil.AssertTrue(t, h.IsHuman())

	m, ok := h.ChooseMove(testutil.MustEmptyGrid(t, 6, 6), board.Vertical)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m, testutil.MustMove(t, "A2"))
}

func TestAIPlayer(t *testing.T) {
	cfg := config.NewSearchConfig()
	cfg.MaxTime = 0
	cfg.MaxDepth = 1
	a := NewAIPlayer("solver", cfg)

	testutil.AssertEqual(t, a.Name(), "solver")
	testutil.AssertFalse(t, a.IsHuman())

	g := testutil.MustGrid(t, `
		- - - - - -
		- . . . . -
		- . . . . -
		- . . . A -
		- . . . . -
		- - - - - -
	`)
	m, ok := a.ChooseMove(g, board.Vertical)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m, testutil.MustMove(t, "F3"))
	testutil.AssertEqual(t, a.LastResult().Move, m)
	testutil.AssertEqual(t, a.LastResult().Depth, 1)
	testutil.AssertEqual(t, g.At(5, 2), board.BorderMark, "ChooseMove must not place")
}

func TestHumanPlayer_SharedScanner(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("A1\nB2\nC3\n"))
	first := NewHumanPlayerScanner("first", sc, nil)
	second := NewHumanPlayerScanner("second", sc, nil)
	g := testutil.MustEmptyGrid(t, 6, 6)

	var got []string
	for _, p := range []*HumanPlayer{first, second, first} {
		m, ok := p.ChooseMove(g, board.Vertical)
		testutil.AssertTrue(t, ok)
		got = append(got, m.String())
	}
	testutil.AssertEqual(t, got, []string{"A1", "B2", "C3"})
}
