// internal/editor/clipboard.go
package editor

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/quill/internal/logger"
)

// YankSelection copies the selected text to the clipboard register.
// Returns false (not an error) when nothing is selected.
func (e *Editor) YankSelection() (bool, error) {
	sel, ok := e.Selection()
	if !ok {
		return false, nil
	}

	text := e.doc.Slice(sel.Start, sel.End)
	if err := e.writeClipboard(text); err != nil {
		return false, fmt.Errorf("failed to yank selection: %w", err)
	}
	logger.Debugf("Editor: Yanked %d runes", sel.Len())

	e.ClearSelection()
	e.notifyCursorMoved()
	return true, nil
}

// YankAll copies the entire buffer to the clipboard register, so the raw
// markup can be pasted into an external surface.
func (e *Editor) YankAll() error {
	if err := e.writeClipboard(e.doc.Content()); err != nil {
		return fmt.Errorf("failed to yank buffer: %w", err)
	}
	logger.Debugf("Editor: Yanked whole buffer (%d runes)", e.doc.Len())
	return nil
}

// Paste inserts the clipboard register at the cursor as a raw edit,
// replacing any selection.
func (e *Editor) Paste() error {
	text, err := e.readClipboard()
	if err != nil {
		return fmt.Errorf("failed to read clipboard: %w", err)
	}
	if text == "" {
		return nil
	}

	sel := e.SelectionOrCaret()
	runes := []rune(e.doc.Content())
	sel = sel.Clamp(len(runes))

	newContent := string(runes[:sel.Start]) + text + string(runes[sel.End:])
	e.doc.SetContent(newContent)
	e.hist.RecordIfChanged(newContent)
	e.ClearSelection()
	e.Cursor = sel.Start + len([]rune(text))

	e.notifyBufferChanged()
	return nil
}

func (e *Editor) writeClipboard(text string) error {
	if e.systemClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			// Fall back to the internal register when no system clipboard
			// is available (e.g. headless terminals).
			logger.Warnf("Editor: system clipboard write failed: %v", err)
			e.register = text
			return nil
		}
		return nil
	}
	e.register = text
	return nil
}

func (e *Editor) readClipboard() (string, error) {
	if e.systemClipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			logger.Warnf("Editor: system clipboard read failed: %v", err)
			return e.register, nil
		}
		return text, nil
	}
	return e.register, nil
}
