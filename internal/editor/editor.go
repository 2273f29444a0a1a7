// internal/editor/editor.go
package editor

import (
	"fmt"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/history"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/types"
)

// Editor owns the document, the cursor, the selection and the history stack,
// and threads every change through them. All operations run synchronously on
// the event loop goroutine; the history stack is confined here.
type Editor struct {
	doc    *buffer.Document
	Cursor int // Rune offset of the caret

	// --- Selection State ---
	selecting bool
	selAnchor int // Anchor offset of the selection; the other end is Cursor

	hist         *history.History
	eventManager *event.Manager

	// Clipboard State
	register        string // Internal register for yank/put
	systemClipboard bool
}

// NewEditor creates a new Editor over the given document.
func NewEditor(doc *buffer.Document, historyLimit int) *Editor {
	return &Editor{
		doc:       doc,
		Cursor:    0,
		selecting: false,
		selAnchor: -1,
		hist:      history.NewWithLimit(doc.Content(), historyLimit),
	}
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// SetSystemClipboard toggles use of the OS clipboard over the internal register.
func (e *Editor) SetSystemClipboard(enabled bool) {
	e.systemClipboard = enabled
}

// Document returns the editor's document.
func (e *Editor) Document() *buffer.Document {
	return e.doc
}

// History returns the editor's history stack.
func (e *Editor) History() *history.History {
	return e.hist
}

// Content returns the current buffer text.
func (e *Editor) Content() string {
	return e.doc.Content()
}

// --- Insertion operations (engine + history) ---

// InsertRequest applies an insertion request at the current selection,
// records the result, and moves the cursor to the engine's computed offset.
func (e *Editor) InsertRequest(req Request) {
	sel := e.SelectionOrCaret()
	newContent, newCursor := Apply(e.doc.Content(), sel, req)

	e.doc.SetContent(newContent)
	e.hist.Record(newContent)
	e.ClearSelection()
	e.Cursor = newCursor

	e.notifyBufferChanged()
}

// InsertWrap surrounds the selection with a before/after pair.
func (e *Editor) InsertWrap(before, after string) {
	e.InsertRequest(Wrap(before, after))
}

// InsertBlock inserts a fragment at the selection start, replacing any
// selected text.
func (e *Editor) InsertBlock(fragment string) {
	e.InsertRequest(InsertAt(fragment))
}

// --- Raw edit path (bypasses the engine) ---

// ReplaceAll swaps in a whole new buffer value, recording it only when it
// differs from the current snapshot. This is the free-typing path.
func (e *Editor) ReplaceAll(text string) {
	if !e.hist.RecordIfChanged(text) {
		return
	}
	e.doc.SetContent(text)
	e.clampCursor()
	e.notifyBufferChanged()
}

// InsertRune types a single rune at the cursor, replacing any selection.
func (e *Editor) InsertRune(r rune) {
	sel := e.SelectionOrCaret()
	runes := []rune(e.doc.Content())
	sel = sel.Clamp(len(runes))

	newContent := string(runes[:sel.Start]) + string(r) + string(runes[sel.End:])
	e.doc.SetContent(newContent)
	e.hist.RecordIfChanged(newContent)
	e.ClearSelection()
	e.Cursor = sel.Start + 1

	e.notifyBufferChanged()
}

// InsertNewline types a line break at the cursor.
func (e *Editor) InsertNewline() {
	e.InsertRune('\n')
}

// DeleteBackward removes the selection, or the rune before the cursor.
func (e *Editor) DeleteBackward() {
	runes := []rune(e.doc.Content())

	sel := e.SelectionOrCaret().Clamp(len(runes))
	if sel.IsCaret() {
		if e.Cursor <= 0 {
			return
		}
		sel = types.Selection{Start: e.Cursor - 1, End: e.Cursor}
	}

	e.deleteRange(runes, sel)
}

// DeleteForward removes the selection, or the rune after the cursor.
func (e *Editor) DeleteForward() {
	runes := []rune(e.doc.Content())

	sel := e.SelectionOrCaret().Clamp(len(runes))
	if sel.IsCaret() {
		if e.Cursor >= len(runes) {
			return
		}
		sel = types.Selection{Start: e.Cursor, End: e.Cursor + 1}
	}

	e.deleteRange(runes, sel)
}

func (e *Editor) deleteRange(runes []rune, sel types.Selection) {
	newContent := string(runes[:sel.Start]) + string(runes[sel.End:])
	e.doc.SetContent(newContent)
	e.hist.RecordIfChanged(newContent)
	e.ClearSelection()
	e.Cursor = sel.Start

	e.notifyBufferChanged()
}

// --- Undo / Redo ---

// Undo steps the buffer back one snapshot. A no-op at the oldest snapshot.
func (e *Editor) Undo() bool {
	if !e.hist.CanUndo() {
		logger.Debugf("Editor: Undo at history boundary")
		return false
	}
	e.restore(e.hist.Undo())
	return true
}

// Redo steps the buffer forward one snapshot. A no-op at the newest snapshot.
func (e *Editor) Redo() bool {
	if !e.hist.CanRedo() {
		logger.Debugf("Editor: Redo at history boundary")
		return false
	}
	e.restore(e.hist.Redo())
	return true
}

func (e *Editor) restore(text string) {
	e.doc.SetContent(text)
	e.ClearSelection()
	e.clampCursor()
	e.notifyBufferChanged()
}

// CanUndo reports whether an undo step is available.
func (e *Editor) CanUndo() bool { return e.hist.CanUndo() }

// CanRedo reports whether a redo step is available.
func (e *Editor) CanRedo() bool { return e.hist.CanRedo() }

// --- Cursor ---

// SetCursor sets the caret offset, clamped to the buffer bounds.
func (e *Editor) SetCursor(offset int) {
	e.Cursor = offset
	e.clampCursor()
	e.notifyCursorMoved()
}

// MoveCursor shifts the caret by delta runes, clamped to the buffer bounds.
// When extend is set the selection anchor is kept (or planted first);
// otherwise any selection is cleared.
func (e *Editor) MoveCursor(delta int, extend bool) {
	if extend {
		e.StartOrUpdateSelection()
	} else {
		e.ClearSelection()
	}
	e.Cursor += delta
	e.clampCursor()
	e.notifyCursorMoved()
}

func (e *Editor) clampCursor() {
	if e.Cursor < 0 {
		e.Cursor = 0
	}
	if max := e.doc.Len(); e.Cursor > max {
		e.Cursor = max
	}
}

// --- Selection ---

// HasSelection returns true if there is an active, non-empty selection.
func (e *Editor) HasSelection() bool {
	return e.selecting && e.selAnchor != e.Cursor
}

// Selection returns the normalized selection range and true, or a zero
// selection and false when nothing is selected.
func (e *Editor) Selection() (types.Selection, bool) {
	if !e.HasSelection() {
		return types.Selection{}, false
	}
	sel := types.Selection{Start: e.selAnchor, End: e.Cursor}
	return sel.Normalized(), true
}

// SelectionOrCaret returns the active selection, or a caret at the cursor.
func (e *Editor) SelectionOrCaret() types.Selection {
	if sel, ok := e.Selection(); ok {
		return sel
	}
	return types.Caret(e.Cursor)
}

// StartOrUpdateSelection plants the anchor at the cursor if no selection is
// active. The other end of the selection always follows the cursor.
func (e *Editor) StartOrUpdateSelection() {
	if !e.selecting {
		e.selAnchor = e.Cursor
		e.selecting = true
		logger.Debugf("Editor: Selection started at %d", e.selAnchor)
	}
}

// SelectAll selects the whole buffer and parks the cursor at the end.
func (e *Editor) SelectAll() {
	e.selAnchor = 0
	e.selecting = true
	e.Cursor = e.doc.Len()
	e.notifyCursorMoved()
}

// ClearSelection resets the selection state.
func (e *Editor) ClearSelection() {
	e.selecting = false
	e.selAnchor = -1
}

// --- Document I/O ---

// LoadFile reads a file into the document and reseeds history with it.
func (e *Editor) LoadFile(path string) error {
	if err := e.doc.Load(path); err != nil {
		return err
	}
	e.hist.Reset(e.doc.Content())
	e.Cursor = 0
	e.ClearSelection()
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeDocumentLoaded, event.DocumentLoadedData{FilePath: path})
	}
	e.notifyBufferChanged()
	return nil
}

// SaveFile writes the document to its bound path.
func (e *Editor) SaveFile() error {
	if err := e.doc.Save(""); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeDocumentSaved, event.DocumentSavedData{FilePath: e.doc.FilePath()})
	}
	return nil
}

// --- Event plumbing ---

func (e *Editor) notifyBufferChanged() {
	if e.eventManager == nil {
		return
	}
	e.eventManager.Dispatch(event.TypeBufferChanged, event.BufferChangedData{
		Content: e.doc.Content(),
		Cursor:  e.Cursor,
	})
	e.eventManager.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		CanUndo: e.hist.CanUndo(),
		CanRedo: e.hist.CanRedo(),
	})
}

func (e *Editor) notifyCursorMoved() {
	if e.eventManager == nil {
		return
	}
	e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{
		Offset:    e.Cursor,
		Selection: e.SelectionOrCaret(),
	})
}
