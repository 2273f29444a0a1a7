// internal/event/event.go
package event

import (
	"github.com/bethropolis/quill/internal/types"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core Editor Events
	TypeBufferChanged  // Fired when the buffer text changes (insert, raw edit, undo, redo)
	TypeCursorMoved    // Fired when the cursor offset changes
	TypeHistoryChanged // Fired when undo/redo availability may have changed
	TypeDocumentSaved  // Fired after the document is successfully saved
	TypeDocumentLoaded // Fired after a document is successfully loaded

	// Surface Events
	TypeViewToggled // Fired when the raw/preview view is switched

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// BufferChangedData carries the new buffer value and cursor position.
type BufferChangedData struct {
	Content string
	Cursor  int
}

// CursorMovedData contains the new cursor offset and selection.
type CursorMovedData struct {
	Offset    int
	Selection types.Selection
}

// HistoryChangedData carries the current undo/redo availability flags.
type HistoryChangedData struct {
	CanUndo bool
	CanRedo bool
}

// DocumentSavedData contains info about the saved document.
type DocumentSavedData struct {
	FilePath string
}

// DocumentLoadedData contains info about the loaded document.
type DocumentLoadedData struct {
	FilePath string
}

// ViewToggledData reports whether the preview pane is now active.
type ViewToggledData struct {
	Preview bool
}

// AppQuitData could carry an exit reason later.
type AppQuitData struct{}

// AppReadyData could carry initial state later.
type AppReadyData struct{}
