// internal/modehandler/edit_mode.go
package modehandler

import (
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
)

// handleActionEdit handles actions while typing in the raw buffer.
func (mh *ModeHandler) handleActionEdit(actionEvent input.ActionEvent) bool {
	// Any action other than quit clears a pending quit confirmation.
	if actionEvent.Action != input.ActionQuit && actionEvent.Action != input.ActionUnknown {
		mh.forceQuitPending = false
	}

	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.editor.InsertRune(actionEvent.Rune)
	case input.ActionInsertNewline:
		mh.editor.InsertNewline()
	case input.ActionDeleteCharBackward:
		mh.editor.DeleteBackward()
	case input.ActionDeleteCharForward:
		mh.editor.DeleteForward()

	case input.ActionMoveLeft:
		mh.editor.MoveCursor(-1, false)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(1, false)
	case input.ActionMoveUp:
		mh.editor.MoveCursorVert(-1)
	case input.ActionMoveDown:
		mh.editor.MoveCursorVert(1)
	case input.ActionMoveHome:
		mh.editor.MoveHome()
	case input.ActionMoveEnd:
		mh.editor.MoveEnd()
	case input.ActionSelectLeft:
		mh.editor.MoveCursor(-1, true)
	case input.ActionSelectRight:
		mh.editor.MoveCursor(1, true)
	case input.ActionSelectAll:
		mh.editor.SelectAll()

	case input.ActionUndo:
		if !mh.editor.Undo() {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		if !mh.editor.Redo() {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	case input.ActionYank:
		yanked, err := mh.editor.YankSelection()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Yank failed: %v", err)
		} else if yanked {
			mh.statusBar.SetTemporaryMessage("Selection copied")
		}
	case input.ActionYankAll:
		if err := mh.editor.YankAll(); err != nil {
			mh.statusBar.SetTemporaryMessage("Copy failed: %v", err)
		} else {
			mh.statusBar.SetTemporaryMessage("Markup copied")
		}
	case input.ActionPaste:
		if err := mh.editor.Paste(); err != nil {
			mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
		}

	case input.ActionSave:
		if err := mh.editor.SaveFile(); err != nil {
			logger.Errorf("ModeHandler: Save failed: %v", err)
			mh.statusBar.SetTemporaryMessage("Save failed: %v", err)
		} else {
			mh.statusBar.SetTemporaryMessage("Saved %s", mh.editor.Document().FilePath())
		}

	case input.ActionOpenPalette:
		mh.openPalette()
	case input.ActionTogglePreview:
		mh.enterPreview()
	case input.ActionEnterCommandMode:
		mh.enterCommandMode()

	case input.ActionCancel:
		if mh.editor.HasSelection() {
			mh.editor.ClearSelection()
		}
	case input.ActionQuit:
		mh.requestQuit()

	default:
		return false
	}
	return true
}
