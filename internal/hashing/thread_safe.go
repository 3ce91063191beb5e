package hashing

import (
	"sync"

	"github.com/lgbarn/twixt-go/internal/board"
)

// ThreadSafeDuplicateDetector is a DuplicateDetector shared by the games of a
// series running on several workers.
type ThreadSafeDuplicateDetector struct {
	mu       sync.Mutex
	detector *DuplicateDetector
}

// NewThreadSafeDuplicateDetector creates a detector safe for concurrent use.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(exactMatch, maxCapacity),
	}
}

// CheckAndAdd reports whether a game ending in p after plies placements was
// seen before, recording it if not. Hashing happens outside the lock.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(p board.Position, plies int) bool {
	if p == nil {
		return false
	}
	return d.CheckAndAddSignature(Signature(p, plies))
}

// CheckAndAddSignature is CheckAndAdd for a precomputed signature.
func (d *ThreadSafeDuplicateDetector) CheckAndAddSignature(sig GameSignature) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAddSignature(sig)
}

// Counts returns the unique and duplicate totals from a single consistent
// view of the detector.
func (d *ThreadSafeDuplicateDetector) Counts() (unique, duplicates int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.UniqueCount(), d.detector.DuplicateCount()
}

// IsFull reports whether new final positions are no longer stored.
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.IsFull()
}
