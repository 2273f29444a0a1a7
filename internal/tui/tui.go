// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen

	viewY int // Top visible display line of the active pane
}

// New creates and initializes a new TUI instance.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}

	s.SetStyle(tcell.StyleDefault)

	return &TUI{screen: s}, nil
}

// NewWithScreen wraps an existing screen (simulation screens in tests).
func NewWithScreen(s tcell.Screen) *TUI {
	return &TUI{screen: s}
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next event.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostEvent queues an event into the screen's event stream.
func (t *TUI) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}

// ensureVisible scrolls the viewport so the given display line is on screen.
func (t *TUI) ensureVisible(line, viewHeight int) {
	if viewHeight <= 0 {
		return
	}
	if line < t.viewY {
		t.viewY = line
	}
	if line >= t.viewY+viewHeight {
		t.viewY = line - viewHeight + 1
	}
	if t.viewY < 0 {
		t.viewY = 0
	}
}
