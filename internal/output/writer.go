package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/twixt-go/internal/match"
)

// GameWriter is the interface for writing finished games.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(out match.Outcome) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns a JSON writer when jsonFormat is set and a text
// writer otherwise.
func NewGameWriter(w io.Writer, jsonFormat bool) GameWriter {
	if jsonFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes games as text records.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewTextWriter creates a new text writer wrapping move lists at 80 columns.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w, maxLineLength: 80}
}

// WriteGame writes a game record followed by a blank line.
func (tw *TextWriter) WriteGame(out match.Outcome) error {
	WriteOutcome(tw.w, out, tw.maxLineLength)
	_, err := io.WriteString(tw.w, "\n")
	return err
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	games []*JSONGame
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONGame, 0),
	}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(out match.Outcome) error {
	jw.games = append(jw.games, GameToJSON(out))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
