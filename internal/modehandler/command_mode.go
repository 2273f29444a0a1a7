// internal/modehandler/command_mode.go
package modehandler

import (
	"strings"

	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
)

// enterCommandMode opens the ':' command line.
func (mh *ModeHandler) enterCommandMode() {
	mh.cmdBuffer = ""
	mh.setMode(ModeCommand)
	mh.statusBar.SetPrompt(":")
}

// handleActionCommand edits and executes the command line.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.cmdBuffer += string(actionEvent.Rune)
	case input.ActionDeleteCharBackward:
		if len(mh.cmdBuffer) > 0 {
			runes := []rune(mh.cmdBuffer)
			mh.cmdBuffer = string(runes[:len(runes)-1])
		}
	case input.ActionInsertNewline, input.ActionConfirm:
		mh.executeCommand()
		return true
	case input.ActionCancel:
		mh.statusBar.SetPrompt("")
		mh.setMode(ModeEdit)
		return true
	default:
		return false
	}
	mh.statusBar.SetPrompt(":" + mh.cmdBuffer)
	return true
}

// executeCommand runs the registered command named in the buffer.
func (mh *ModeHandler) executeCommand() {
	defer func() {
		mh.cmdBuffer = ""
		mh.statusBar.SetPrompt("")
		mh.setMode(ModeEdit)
	}()

	parts := strings.Fields(mh.cmdBuffer)
	if len(parts) == 0 {
		return
	}
	name, args := parts[0], parts[1:]

	cmdFunc, exists := mh.commands[name]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", name)
		return
	}

	logger.Debugf("ModeHandler: Executing command %q with args %v", name, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Command %q failed: %v", name, err)
	}
}
