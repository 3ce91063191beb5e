// Package output renders grids, game records and series summaries as text
// or JSON.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/engine"
	"github.com/lgbarn/twixt-go/internal/match"
)

// passToken stands in for a passed turn in move lists.
const passToken = "--"

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, adding a space separator or wrapping as needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// RenderGrid writes p with column labels across the top and row labels down
// the left. Cells use the mark symbols: '.' empty, '-' border, 'A' vertical
// peg, 'B' horizontal peg.
func RenderGrid(w io.Writer, p board.Position) {
	rows := p.Labels().Rows()
	cols := p.Labels().Cols()

	rowWidth := 0
	for _, r := range rows {
		rowWidth = max(rowWidth, len(r))
	}
	cellWidth := 1
	for _, c := range cols {
		cellWidth = max(cellWidth, len(strconv.Itoa(c)))
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowWidth))
	for _, c := range cols {
		fmt.Fprintf(&b, " %*d", cellWidth, c)
	}
	b.WriteByte('\n')
	for i, r := range rows {
		fmt.Fprintf(&b, "%-*s", rowWidth, r)
		for j := range cols {
			fmt.Fprintf(&b, " %*c", cellWidth, p.At(i, j).Symbol())
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String()) //nolint:errcheck // best-effort display
}

// BridgeString formats a bridge as "A1-C2 /".
func BridgeString(labels *board.Labels, br board.Bridge) string {
	return fmt.Sprintf("%s-%s %c", labels.Move(br.From), labels.Move(br.To), br.Slant())
}

// WriteBridges lists the bridges of both sides, one side per line. Sides
// without bridges are omitted.
func WriteBridges(w io.Writer, p board.Position) {
	for _, side := range []board.Side{board.Vertical, board.Horizontal} {
		bridges := engine.Bridges(p, side)
		if len(bridges) == 0 {
			continue
		}
		parts := make([]string, len(bridges))
		for i, br := range bridges {
			parts[i] = BridgeString(p.Labels(), br)
		}
		fmt.Fprintf(w, "%s bridges: %s\n", side, strings.Join(parts, ", "))
	}
}

// WriteMoveList writes plies numbered in pairs, "1. A1 B2 2. D4 --", wrapped
// at maxLineLength.
func WriteMoveList(w io.Writer, plies []match.Ply, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	for i, p := range plies {
		if i%2 == 0 {
			ow.Write(fmt.Sprintf("%d.", i/2+1))
		}
		if p.Pass {
			ow.Write(passToken)
		} else {
			ow.Write(p.Move.String())
		}
	}
	if len(plies) > 0 {
		ow.NewLine()
	}
}

// ResultString describes how a game ended.
func ResultString(out match.Outcome) string {
	if !out.Decided {
		return fmt.Sprintf("draw after %d plies", out.Plies)
	}
	return fmt.Sprintf("%s wins after %d plies", out.Winner, out.Plies)
}

// WriteOutcome writes the full text record of a finished game.
func WriteOutcome(w io.Writer, out match.Outcome, maxLineLength int) {
	fmt.Fprintf(w, "Result: %s\n", ResultString(out))
	if len(out.Moves) > 0 {
		fmt.Fprintf(w, "First: %s\n", out.Moves[0].Side)
		WriteMoveList(w, out.Moves, maxLineLength)
	}
	if out.Final != nil {
		RenderGrid(w, out.Final)
		WriteBridges(w, out.Final)
	}
}

// WriteSeries writes the summary of a self-play series.
func WriteSeries(w io.Writer, sr match.SeriesResult) {
	fmt.Fprintf(w, "%d game(s): vertical %d, horizontal %d, draws %d\n",
		sr.Games, sr.VerticalWins, sr.HorizontalWins, sr.Draws)
	fmt.Fprintf(w, "first mover won %d, average %.1f plies, %d duplicate(s)\n",
		sr.FirstMoverWins, sr.AveragePlies(), sr.Duplicates)
}
