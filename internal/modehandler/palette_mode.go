// internal/modehandler/palette_mode.go
package modehandler

import (
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/toolbar"
)

// openPalette enters the toolbar palette overlay.
func (mh *ModeHandler) openPalette() {
	mh.paletteIndex = 0
	mh.setMode(ModePalette)
}

// handleActionPalette navigates the toolbar palette.
func (mh *ModeHandler) handleActionPalette(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionMoveUp, input.ActionMoveLeft:
		if mh.paletteIndex > 0 {
			mh.paletteIndex--
		}
	case input.ActionMoveDown, input.ActionMoveRight:
		if mh.paletteIndex < len(toolbar.Items)-1 {
			mh.paletteIndex++
		}
	case input.ActionInsertNewline, input.ActionConfirm:
		mh.choosePaletteItem(toolbar.Items[mh.paletteIndex])
	case input.ActionCancel, input.ActionOpenPalette:
		mh.setMode(ModeEdit)
	case input.ActionQuit:
		mh.setMode(ModeEdit)
	default:
		return false
	}
	return true
}

// choosePaletteItem either fires a field-less action immediately or starts
// the prompt flow to collect its fields.
func (mh *ModeHandler) choosePaletteItem(item toolbar.Item) {
	if len(item.Fields) == 0 {
		mh.editor.InsertRequest(item.Build(nil))
		mh.statusBar.SetTemporaryMessage("%s inserted", item.Label)
		mh.setMode(ModeEdit)
		return
	}
	mh.startPrompt(item)
}

// enterPreview switches to the read-only preview pane.
func (mh *ModeHandler) enterPreview() {
	mh.setMode(ModePreview)
	mh.eventManager.Dispatch(event.TypeViewToggled, event.ViewToggledData{Preview: true})
}

// handleActionPreview handles keys while the preview pane is shown.
func (mh *ModeHandler) handleActionPreview(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionCancel, input.ActionTogglePreview:
		mh.setMode(ModeEdit)
		mh.eventManager.Dispatch(event.TypeViewToggled, event.ViewToggledData{Preview: false})
		return true
	case input.ActionQuit:
		mh.requestQuit()
		return true
	}
	return false
}
