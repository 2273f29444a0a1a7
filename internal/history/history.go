// Package history provides undo/redo functionality via a snapshot stack.
//
// Every recorded entry is the full buffer text at one point in time. The
// stack always holds at least the initial snapshot, and the current index
// always addresses a valid entry, so Undo and Redo at the boundaries are
// no-ops that still yield the current value.
package history

import (
	"sync"

	"github.com/bethropolis/quill/internal/logger"
)

const DefaultMaxSnapshots = 100

// History handles the undo/redo snapshot stack.
type History struct {
	snapshots    []string
	currentIndex int // Index of the snapshot currently addressed
	maxSnapshots int // FIFO eviction bound; <= 0 means unbounded
	mutex        sync.Mutex
}

// New creates a History seeded with the initial buffer value.
func New(initial string) *History {
	return NewWithLimit(initial, DefaultMaxSnapshots)
}

// NewWithLimit creates a History with an explicit snapshot cap.
func NewWithLimit(initial string, maxSnapshots int) *History {
	return &History{
		snapshots:    []string{initial},
		currentIndex: 0,
		maxSnapshots: maxSnapshots,
	}
}

// Record adds a new snapshot, destroying any redo branch.
// If the current index isn't at the end, every snapshot after it is
// discarded first; the new snapshot then becomes the current one.
func (h *History) Record(newBuffer string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.record(newBuffer)
}

// RecordIfChanged records newBuffer only when it differs from the snapshot
// currently addressed. This is the coalescing rule for raw edits: resetting
// the buffer to its current value must not grow the history.
func (h *History) RecordIfChanged(newBuffer string) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.snapshots[h.currentIndex] == newBuffer {
		return false
	}
	h.record(newBuffer)
	return true
}

// record assumes h.mutex is held.
func (h *History) record(newBuffer string) {
	// Truncate the redo branch if we're not at the end.
	if h.currentIndex < len(h.snapshots)-1 {
		h.snapshots = h.snapshots[:h.currentIndex+1]
	}

	h.snapshots = append(h.snapshots, newBuffer)

	// Limit history size (simple FIFO eviction of the oldest snapshots).
	if h.maxSnapshots > 0 && len(h.snapshots) > h.maxSnapshots {
		h.snapshots = h.snapshots[len(h.snapshots)-h.maxSnapshots:]
	}

	h.currentIndex = len(h.snapshots) - 1

	logger.Debugf("History: Recorded snapshot. Index: %d, Count: %d", h.currentIndex, len(h.snapshots))
}

// Undo steps back one snapshot and returns the value now addressed.
// At index 0 it is a no-op that still returns the current value.
func (h *History) Undo() string {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.currentIndex <= 0 {
		logger.Debugf("History: Nothing to undo.")
		return h.snapshots[h.currentIndex]
	}

	h.currentIndex--
	logger.Debugf("History: Undo to index %d", h.currentIndex)
	return h.snapshots[h.currentIndex]
}

// Redo steps forward one snapshot and returns the value now addressed.
// At the last index it is a no-op that still returns the current value.
func (h *History) Redo() string {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.currentIndex >= len(h.snapshots)-1 {
		logger.Debugf("History: Nothing to redo. currentIndex=%d, len=%d", h.currentIndex, len(h.snapshots))
		return h.snapshots[h.currentIndex]
	}

	h.currentIndex++
	logger.Debugf("History: Redo to index %d", h.currentIndex)
	return h.snapshots[h.currentIndex]
}

// Current returns the snapshot currently addressed.
func (h *History) Current() string {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.snapshots[h.currentIndex]
}

// CanUndo returns true if there are snapshots before the current one.
func (h *History) CanUndo() bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.currentIndex > 0
}

// CanRedo returns true if there are snapshots after the current one.
func (h *History) CanRedo() bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.currentIndex < len(h.snapshots)-1
}

// Len returns the number of snapshots currently held.
func (h *History) Len() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.snapshots)
}

// Reset drops everything and reseeds the stack with initial.
// Call this when a new document is loaded.
func (h *History) Reset(initial string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.snapshots = h.snapshots[:0]
	h.snapshots = append(h.snapshots, initial)
	h.currentIndex = 0
	logger.Debugf("History: Reset.")
}
