// internal/app/events.go
package app

import (
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/logger"
)

// handleBufferChanged refreshes derived state after any text change and
// schedules the cursor re-focus for after the next committed frame, so the
// status bar always reflects the caret position inside the NEW buffer value.
func (a *App) handleBufferChanged(e event.Event) bool {
	a.publishStats()
	a.scheduleAfterDraw(func() {
		a.statusBar.SetCursorInfo(a.editor.Cursor)
	})
	return false // Not consumed
}

// handleCursorMoved updates the status bar based on cursor position.
func (a *App) handleCursorMoved(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.Offset)
	}
	return false // Not consumed
}

// handleHistoryChanged updates the undo/redo indicators.
func (a *App) handleHistoryChanged(e event.Event) bool {
	if data, ok := e.Data.(event.HistoryChangedData); ok {
		a.statusBar.SetHistoryInfo(data.CanUndo, data.CanRedo)
	}
	return false // Not consumed
}

// handleDocumentSaved updates the modified indicator after a save.
func (a *App) handleDocumentSaved(e event.Event) bool {
	a.updateStatusBarContent()
	return false // Not consumed
}

// handleDocumentLoaded re-seeds the status bar and metrics for the new file.
func (a *App) handleDocumentLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentLoadedData); ok {
		logger.Debugf("App: Document loaded from %q", data.FilePath)
	}
	a.updateStatusBarContent()
	a.publishStats()
	a.requestRedraw()
	return false // Not consumed
}

// handleViewToggled redraws when entering or leaving the preview pane.
func (a *App) handleViewToggled(e event.Event) bool {
	if data, ok := e.Data.(event.ViewToggledData); ok {
		logger.DebugTagf("view", "App: Preview pane active=%v", data.Preview)
	}
	a.requestRedraw()
	return false // Not consumed
}
