// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"

	"github.com/bethropolis/quill/internal/editor"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/statusbar"
	"github.com/bethropolis/quill/internal/toolbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeEdit InputMode = iota
	ModePalette
	ModePrompt
	ModePreview
	ModeCommand
)

// ModeHandler manages input modes, the toolbar palette, field prompts, and
// command execution.
type ModeHandler struct {
	editor         *editor.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}

	currentMode InputMode

	// Palette state
	paletteIndex int

	// Prompt state (modal field collection for one toolbar item)
	promptItem   toolbar.Item
	promptIndex  int
	promptBuffer string
	promptValues map[string]string

	// Command state
	cmdBuffer string
	commands  map[string]plugin.CommandFunc

	forceQuitPending bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *editor.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{}
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeEdit,
		commands:       make(map[string]plugin.CommandFunc),
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	switch mh.currentMode {
	case ModeEdit:
		return mh.handleActionEdit(actionEvent)
	case ModePalette:
		return mh.handleActionPalette(actionEvent)
	case ModePrompt:
		return mh.handleActionPrompt(actionEvent)
	case ModePreview:
		return mh.handleActionPreview(actionEvent)
	case ModeCommand:
		return mh.handleActionCommand(actionEvent)
	default:
		logger.Warnf("ModeHandler: Unknown input mode: %v", mh.currentMode)
		return false
	}
}

// CurrentMode returns the active input mode.
func (mh *ModeHandler) CurrentMode() InputMode {
	return mh.currentMode
}

// PaletteIndex returns the highlighted palette entry.
func (mh *ModeHandler) PaletteIndex() int {
	return mh.paletteIndex
}

// RegisterCommand adds a named command to the ':' command registry.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" || cmdFunc == nil {
		return fmt.Errorf("invalid command registration: name=%q", name)
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command %q", name)
	return nil
}

func (mh *ModeHandler) setMode(mode InputMode) {
	mh.currentMode = mode
	switch mode {
	case ModeEdit:
		mh.statusBar.SetViewMode("edit")
		mh.statusBar.SetPrompt("")
	case ModePalette:
		mh.statusBar.SetViewMode("insert")
	case ModePrompt:
		mh.statusBar.SetViewMode("insert")
	case ModePreview:
		mh.statusBar.SetViewMode("preview")
		mh.statusBar.SetPrompt("")
	case ModeCommand:
		mh.statusBar.SetViewMode("command")
	}
}

// requestQuit signals termination, asking for confirmation when the
// document has unsaved changes.
func (mh *ModeHandler) requestQuit() {
	if mh.editor.Document().IsModified() && !mh.forceQuitPending {
		mh.forceQuitPending = true
		mh.statusBar.SetTemporaryMessage("Unsaved changes! Press quit again to discard.")
		return
	}
	close(mh.quitSignal)
}
