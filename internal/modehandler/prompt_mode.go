// internal/modehandler/prompt_mode.go
package modehandler

import (
	"fmt"

	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/toolbar"
)

// startPrompt begins collecting the fields a toolbar item needs.
func (mh *ModeHandler) startPrompt(item toolbar.Item) {
	mh.promptItem = item
	mh.promptIndex = 0
	mh.promptValues = make(map[string]string, len(item.Fields))
	mh.promptBuffer = item.Fields[0].Default
	mh.setMode(ModePrompt)
	mh.showPromptLine()
}

// handleActionPrompt edits the current field's value.
func (mh *ModeHandler) handleActionPrompt(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.promptBuffer += string(actionEvent.Rune)
	case input.ActionDeleteCharBackward:
		if len(mh.promptBuffer) > 0 {
			runes := []rune(mh.promptBuffer)
			mh.promptBuffer = string(runes[:len(runes)-1])
		}
	case input.ActionInsertNewline, input.ActionConfirm:
		mh.commitPromptField()
	case input.ActionCancel:
		mh.statusBar.SetPrompt("")
		mh.setMode(ModeEdit)
	default:
		return false
	}
	if mh.currentMode == ModePrompt {
		mh.showPromptLine()
	}
	return true
}

// commitPromptField stores the current field and advances; on the last
// field it gates on required-field presence and performs the insertion.
func (mh *ModeHandler) commitPromptField() {
	field := mh.promptItem.Fields[mh.promptIndex]
	mh.promptValues[field.Name] = mh.promptBuffer

	if mh.promptIndex < len(mh.promptItem.Fields)-1 {
		mh.promptIndex++
		mh.promptBuffer = mh.promptItem.Fields[mh.promptIndex].Default
		return
	}

	// Last field committed: the insert affordance stays "disabled" until
	// every required field has a value.
	if !mh.promptItem.Ready(mh.promptValues) {
		mh.statusBar.SetTemporaryMessage("%s: required field missing", mh.promptItem.Label)
		mh.promptIndex = 0
		mh.promptBuffer = mh.promptValues[mh.promptItem.Fields[0].Name]
		return
	}

	mh.warnOddColor()

	mh.editor.InsertRequest(mh.promptItem.Build(mh.promptValues))
	mh.statusBar.SetPrompt("")
	mh.statusBar.SetTemporaryMessage("%s inserted", mh.promptItem.Label)
	mh.setMode(ModeEdit)
}

// warnOddColor flags color values that don't parse as hex. The value is
// still inserted verbatim; any rendering anomaly shows up in the preview.
func (mh *ModeHandler) warnOddColor() {
	color, ok := mh.promptValues["color"]
	if !ok || color == "" {
		return
	}
	if _, valid := toolbar.NormalizeHex(color); !valid {
		mh.statusBar.SetTemporaryMessage("Note: %q is not a hex color, inserting as-is", color)
	}
}

// showPromptLine renders the current field into the status line.
func (mh *ModeHandler) showPromptLine() {
	field := mh.promptItem.Fields[mh.promptIndex]
	marker := ""
	if field.Required {
		marker = "*"
	}
	mh.statusBar.SetPrompt(fmt.Sprintf("%s > %s%s: %s█",
		mh.promptItem.Label, field.Label, marker, mh.promptBuffer))
}
