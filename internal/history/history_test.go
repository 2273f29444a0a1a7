package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsInitialSnapshot(t *testing.T) {
	h := New("<p>hello</p>")

	assert.Equal(t, "<p>hello</p>", h.Current())
	assert.Equal(t, 1, h.Len())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestRecordGrowsStack(t *testing.T) {
	h := New("")

	h.Record("a")
	h.Record("ab")

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, "ab", h.Current())
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestUndoRedoRoundTrip(t *testing.T) {
	h := New("v0")
	h.Record("v1")
	h.Record("v2")

	assert.Equal(t, "v1", h.Undo())
	assert.Equal(t, "v0", h.Undo())
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())

	assert.Equal(t, "v1", h.Redo())
	assert.Equal(t, "v2", h.Redo())
	assert.False(t, h.CanRedo())
}

func TestUndoAtStartIsNoOp(t *testing.T) {
	h := New("only")

	// Repeated undo at the boundary keeps returning the same value.
	assert.Equal(t, "only", h.Undo())
	assert.Equal(t, "only", h.Undo())
	assert.Equal(t, "only", h.Current())
	assert.Equal(t, 1, h.Len())
}

func TestRedoAtEndIsNoOp(t *testing.T) {
	h := New("v0")
	h.Record("v1")

	assert.Equal(t, "v1", h.Redo())
	assert.Equal(t, "v1", h.Current())
}

func TestRecordDiscardsRedoBranch(t *testing.T) {
	h := New("v0")
	h.Record("v1")
	h.Record("v2")

	h.Undo() // back to v1
	h.Record("v1b")

	assert.Equal(t, "v1b", h.Current())
	assert.False(t, h.CanRedo(), "redo branch must be discarded")
	assert.Equal(t, 3, h.Len()) // v0, v1, v1b

	// The old branch is unreachable.
	assert.Equal(t, "v1", h.Undo())
	assert.Equal(t, "v1b", h.Redo())
	assert.Equal(t, "v1b", h.Redo())
}

func TestRecordIfChangedCoalesces(t *testing.T) {
	h := New("same")

	require.False(t, h.RecordIfChanged("same"))
	assert.Equal(t, 1, h.Len())

	require.True(t, h.RecordIfChanged("different"))
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, "different", h.Current())

	// Recording the value we are already on is still a no-op.
	require.False(t, h.RecordIfChanged("different"))
	assert.Equal(t, 2, h.Len())
}

func TestRecordIfChangedAfterUndo(t *testing.T) {
	h := New("v0")
	h.Record("v1")
	h.Undo()

	// Comparison is against the snapshot currently addressed, not the tip.
	require.True(t, h.RecordIfChanged("v1"))
	assert.Equal(t, "v1", h.Current())
	assert.False(t, h.CanRedo())
}

func TestSnapshotLimitEvictsOldest(t *testing.T) {
	h := NewWithLimit("v0", 3)

	for i := 1; i <= 5; i++ {
		h.Record(fmt.Sprintf("v%d", i))
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, "v5", h.Current())

	// Oldest snapshots are gone; undo bottoms out at v3.
	assert.Equal(t, "v4", h.Undo())
	assert.Equal(t, "v3", h.Undo())
	assert.Equal(t, "v3", h.Undo())
	assert.False(t, h.CanUndo())
}

func TestUnboundedWhenLimitZero(t *testing.T) {
	h := NewWithLimit("v0", 0)

	for i := 1; i <= 500; i++ {
		h.Record(fmt.Sprintf("v%d", i))
	}

	assert.Equal(t, 501, h.Len())
}

func TestReset(t *testing.T) {
	h := New("v0")
	h.Record("v1")
	h.Record("v2")
	h.Undo()

	h.Reset("fresh")

	assert.Equal(t, "fresh", h.Current())
	assert.Equal(t, 1, h.Len())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}
