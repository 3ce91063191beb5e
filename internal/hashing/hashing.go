// Package hashing provides position hashing and duplicate detection for
// twixt games.
package hashing

import "github.com/lgbarn/twixt-go/internal/board"

// DuplicateDetector tracks the final positions of finished games.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal game lengths
	useExactMatch bool
	// maxCapacity limits stored signatures (0 = unlimited)
	maxCapacity int
	// uniqueCount is the number of stored signatures
	uniqueCount int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Plies is the number of placements in the game
	Plies int
	// WeakHash is the packed peg counts, for a cheap second check
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature builds the signature of a game that ended in p after plies
// placements.
func Signature(p board.Position, plies int) GameSignature {
	return GameSignature{
		Hash:     Hash(p),
		Plies:    plies,
		WeakHash: WeakHash(p),
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate. Once the detector is full, new
// signatures are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(p board.Position, plies int) bool {
	if p == nil {
		return false
	}
	return d.CheckAndAddSignature(Signature(p, plies))
}

// CheckAndAddSignature is CheckAndAdd for a precomputed signature.
func (d *DuplicateDetector) CheckAndAddSignature(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.uniqueCount++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull reports whether the capacity limit has been reached.
// Always false for unlimited capacity.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}
