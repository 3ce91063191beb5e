package hashing

import (
	"math"
	"sync"

	"lukechampine.com/frand"

	"github.com/lgbarn/twixt-go/internal/board"
)

// DefaultSeed seeds the key stream shared by every table built with
// NewZobrist, so hashes are stable across runs and processes.
var DefaultSeed = [32]byte{'t', 'w', 'i', 'x', 't'}

// Zobrist holds one random key per (cell, peg) for a fixed grid size.
type Zobrist struct {
	rows, cols int
	keys       [][2]uint64 // [cell][0=PegA, 1=PegB]
}

// NewZobrist returns the table for a rows x cols grid drawn from DefaultSeed.
func NewZobrist(rows, cols int) *Zobrist {
	return NewZobristSeeded(rows, cols, DefaultSeed)
}

// NewZobristSeeded draws a table from the given seed.
func NewZobristSeeded(rows, cols int, seed [32]byte) *Zobrist {
	rng := frand.NewCustom(seed[:], 1024, 12)
	z := &Zobrist{
		rows: rows,
		cols: cols,
		keys: make([][2]uint64, rows*cols),
	}
	for i := range z.keys {
		z.keys[i][0] = rng.Uint64n(math.MaxUint64)
		z.keys[i][1] = rng.Uint64n(math.MaxUint64)
	}
	return z
}

// Hash returns the key of the pegs in p. Border marks and empty cells
// contribute nothing. p must have the table's dimensions.
func (z *Zobrist) Hash(p board.Position) uint64 {
	var h uint64
	for i := 0; i < z.rows; i++ {
		for j := 0; j < z.cols; j++ {
			switch p.At(i, j) {
			case board.PegA:
				h ^= z.keys[i*z.cols+j][0]
			case board.PegB:
				h ^= z.keys[i*z.cols+j][1]
			}
		}
	}
	return h
}

// Update returns h with a peg toggled at (row, col), for incremental
// hashing as pegs are placed.
func (z *Zobrist) Update(h uint64, row, col int, peg board.Mark) uint64 {
	switch peg {
	case board.PegA:
		return h ^ z.keys[row*z.cols+col][0]
	case board.PegB:
		return h ^ z.keys[row*z.cols+col][1]
	}
	return h
}

var (
	tablesMu sync.Mutex
	tables   = make(map[[2]int]*Zobrist)
)

// ZobristFor returns the shared DefaultSeed table for a grid size, building
// it on first use.
func ZobristFor(rows, cols int) *Zobrist {
	tablesMu.Lock()
	defer tablesMu.Unlock()
	key := [2]int{rows, cols}
	z, ok := tables[key]
	if !ok {
		z = NewZobrist(rows, cols)
		tables[key] = z
	}
	return z
}

// Hash returns the DefaultSeed hash of p.
func Hash(p board.Position) uint64 {
	return ZobristFor(p.Rows(), p.Cols()).Hash(p)
}

// WeakHash packs the peg counts of both sides. Positions with equal Zobrist
// hashes but different counts are certainly different.
func WeakHash(p board.Position) uint32 {
	var a, b uint32
	for i := 0; i < p.Rows(); i++ {
		for j := 0; j < p.Cols(); j++ {
			switch p.At(i, j) {
			case board.PegA:
				a++
			case board.PegB:
				b++
			}
		}
	}
	return a<<16 | b&0xffff
}
