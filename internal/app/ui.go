// internal/app/ui.go
package app

import (
	"fmt"

	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/metrics"
	"github.com/bethropolis/quill/internal/modehandler"
)

// draw clears the screen and redraws the pane for the current mode plus the
// status bar.
func (a *App) draw() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()

	switch a.modeHandler.CurrentMode() {
	case modehandler.ModePreview:
		lines, err := a.previewRenderer.Render(a.editor.Content())
		if err != nil {
			logger.Warnf("App: preview rendering failed: %v", err)
			a.tuiManager.DrawEditor(a.editor, config.StatusBarHeight)
		} else {
			a.tuiManager.DrawPreview(lines, config.StatusBarHeight)
		}
	case modehandler.ModePalette:
		a.tuiManager.DrawEditor(a.editor, config.StatusBarHeight)
		a.tuiManager.DrawPalette(a.modeHandler.PaletteIndex(), config.StatusBarHeight)
	default:
		a.tuiManager.DrawEditor(a.editor, config.StatusBarHeight)
	}

	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	doc := a.editor.Document()
	a.statusBar.SetFileInfo(doc.FilePath(), doc.IsModified())
	a.statusBar.SetCursorInfo(a.editor.Cursor)
	a.statusBar.SetHistoryInfo(a.editor.CanUndo(), a.editor.CanRedo())
}

// publishStats recomputes the derived document metrics for the status bar.
func (a *App) publishStats() {
	a.statusBar.SetStats(metrics.Compute(a.editor.Content(), a.readingWPM))
}

// SetStatusMessage surfaces a transient message in the status bar.
func (a *App) SetStatusMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(fmt.Sprintf(format, args...))
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
