package output

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/lgbarn/twixt-go/internal/board"
	"github.com/lgbarn/twixt-go/internal/engine"
	"github.com/lgbarn/twixt-go/internal/match"
)

// JSONGame represents a finished game in JSON format.
type JSONGame struct {
	Result  string       `json:"result"`
	Winner  string       `json:"winner,omitempty"`
	Plies   int          `json:"plies"`
	Moves   []JSONPly    `json:"moves,omitempty"`
	Grid    []string     `json:"grid,omitempty"`
	Bridges []JSONBridge `json:"bridges,omitempty"`
	Hash    string       `json:"hash,omitempty"`
}

// JSONPly represents one turn in JSON format.
type JSONPly struct {
	Side string `json:"side"`
	Move string `json:"move,omitempty"`
	Pass bool   `json:"pass,omitempty"`
}

// JSONBridge represents a bridge in JSON format.
type JSONBridge struct {
	Side  string `json:"side"`
	From  string `json:"from"`
	To    string `json:"to"`
	Slant string `json:"slant"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// JSONSeries represents a series summary in JSON format.
type JSONSeries struct {
	Games          int         `json:"games"`
	VerticalWins   int         `json:"verticalWins"`
	HorizontalWins int         `json:"horizontalWins"`
	Draws          int         `json:"draws"`
	FirstMoverWins int         `json:"firstMoverWins"`
	AveragePlies   float64     `json:"averagePlies"`
	Duplicates     int         `json:"duplicates"`
	UniqueFinals   int         `json:"uniqueFinals,omitempty"`
	Results        []JSONEntry `json:"results,omitempty"`
}

// JSONEntry is one game of a series in JSON format.
type JSONEntry struct {
	Index     int    `json:"index"`
	First     string `json:"first"`
	Winner    string `json:"winner,omitempty"`
	Plies     int    `json:"plies"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

// GameToJSON converts a game outcome to JSON format.
func GameToJSON(out match.Outcome) *JSONGame {
	jg := &JSONGame{
		Result: ResultString(out),
		Plies:  out.Plies,
	}
	if out.Decided {
		jg.Winner = out.Winner.String()
	}
	for _, p := range out.Moves {
		jp := JSONPly{Side: p.Side.String(), Pass: p.Pass}
		if !p.Pass {
			jp.Move = p.Move.String()
		}
		jg.Moves = append(jg.Moves, jp)
	}
	if out.Final != nil {
		jg.Grid = gridRows(out.Final)
		jg.Bridges = bridgesToJSON(out.Final)
		jg.Hash = strconv.FormatUint(out.Hash, 16)
	}
	return jg
}

// SeriesToJSON converts a series summary to JSON format.
func SeriesToJSON(sr match.SeriesResult) *JSONSeries {
	js := &JSONSeries{
		Games:          sr.Games,
		VerticalWins:   sr.VerticalWins,
		HorizontalWins: sr.HorizontalWins,
		Draws:          sr.Draws,
		FirstMoverWins: sr.FirstMoverWins,
		AveragePlies:   sr.AveragePlies(),
		Duplicates:     sr.Duplicates,
		UniqueFinals:   sr.UniqueFinals,
	}
	for _, r := range sr.Results {
		e := JSONEntry{
			Index:     r.Index,
			First:     r.First.String(),
			Plies:     r.Plies,
			Duplicate: r.Duplicate,
		}
		if r.Decided {
			e.Winner = r.Winner.String()
		}
		js.Results = append(js.Results, e)
	}
	return js
}

// OutputSeriesJSON writes a series summary as indented JSON.
func OutputSeriesJSON(w io.Writer, sr match.SeriesResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(SeriesToJSON(sr))
}

func gridRows(p board.Position) []string {
	rows := make([]string, p.Rows())
	buf := make([]byte, p.Cols())
	for i := range rows {
		for j := range buf {
			buf[j] = p.At(i, j).Symbol()
		}
		rows[i] = string(buf)
	}
	return rows
}

func bridgesToJSON(p board.Position) []JSONBridge {
	var out []JSONBridge
	for _, side := range []board.Side{board.Vertical, board.Horizontal} {
		for _, br := range engine.Bridges(p, side) {
			out = append(out, JSONBridge{
				Side:  side.String(),
				From:  p.Labels().Move(br.From).String(),
				To:    p.Labels().Move(br.To).String(),
				Slant: string(br.Slant()),
			})
		}
	}
	return out
}
