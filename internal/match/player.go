// Package match runs TWIXT games between players and self-play series
// between solvers.
package match

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/twixt-go/internal/board"
)

// Player chooses moves for one side. ChooseMove receives the live grid for
// reading only; returning false passes the turn.
type Player interface {
	Name() string
	IsHuman() bool
	ChooseMove(g *board.Grid, side board.Side) (board.Move, bool)
}

// HumanPlayer reads moves such as "C3" from a line-oriented reader. An empty
// line re-prompts; "pass" or end of input passes the turn.
type HumanPlayer struct {
	name   string
	in     *bufio.Scanner
	prompt io.Writer
}

// NewHumanPlayer creates a human player reading from in and prompting on
// prompt, which may be nil.
func NewHumanPlayer(name string, in io.Reader, prompt io.Writer) *HumanPlayer {
	return NewHumanPlayerScanner(name, bufio.NewScanner(in), prompt)
}

// NewHumanPlayerScanner is NewHumanPlayer for a scanner shared with other
// players on the same input.
func NewHumanPlayerScanner(name string, in *bufio.Scanner, prompt io.Writer) *HumanPlayer {
	if prompt == nil {
		prompt = io.Discard
	}
	return &HumanPlayer{
		name:   name,
		in:     in,
		prompt: prompt,
	}
}

// Name returns the player's name.
func (h *HumanPlayer) Name() string { return h.name }

// IsHuman returns true.
func (h *HumanPlayer) IsHuman() bool { return true }

// ChooseMove prompts until a parsable move, "pass" or end of input.
func (h *HumanPlayer) ChooseMove(g *board.Grid, side board.Side) (board.Move, bool) {
	for {
		fmt.Fprintf(h.prompt, "%s (%s) move: ", h.name, side)
		if !h.in.Scan() {
			return board.Move{}, false
		}
		text := strings.TrimSpace(h.in.Text())
		switch {
		case text == "":
			continue
		case strings.EqualFold(text, "pass"):
			return board.Move{}, false
		}
		m, err := board.ParseMove(text)
		if err != nil {
			fmt.Fprintf(h.prompt, "%v\n", err)
			continue
		}
		return m, true
	}
}
