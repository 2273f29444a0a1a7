// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/quill/internal/metrics"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleMessage   tcell.Style // Style for temporary messages
	StylePrompt    tcell.Style // Style for prompt/command input
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StylePrompt:    tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	// Content fields, updated via events
	filePath   string
	isModified bool
	cursor     int
	stats      metrics.Stats
	canUndo    bool
	canRedo    bool
	viewMode   string // "edit" / "preview" / etc.

	// Prompt line (command or field input), drawn instead of the default text
	promptText string

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
	}
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor offset shown.
func (sb *StatusBar) SetCursorInfo(offset int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursor = offset
}

// SetStats updates the derived metrics shown.
func (sb *StatusBar) SetStats(stats metrics.Stats) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.stats = stats
}

// SetHistoryInfo updates the undo/redo availability indicators.
func (sb *StatusBar) SetHistoryInfo(canUndo, canRedo bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.canUndo = canUndo
	sb.canRedo = canRedo
}

// SetViewMode updates the displayed view mode.
func (sb *StatusBar) SetViewMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.viewMode = mode
}

// SetPrompt shows live prompt/command input; empty clears it.
func (sb *StatusBar) SetPrompt(text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.promptText = text
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// getDefaultDisplayText builds the default status line text.
// Assumes the lock is held.
func (sb *StatusBar) getDefaultDisplayText() string {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}

	undoIndicator := "·"
	if sb.canUndo {
		undoIndicator = "↶"
	}
	redoIndicator := "·"
	if sb.canRedo {
		redoIndicator = "↷"
	}

	modeIndicator := ""
	if sb.viewMode != "" {
		modeIndicator = fmt.Sprintf(" -- %s", sb.viewMode)
	}

	return fmt.Sprintf("%s%s -- @%d -- %dw %dc ~%dmin %s%s%s",
		fPath, modifiedIndicator, sb.cursor,
		sb.stats.Words, sb.stats.Chars, sb.stats.ReadMinutes,
		undoIndicator, redoIndicator, modeIndicator)
}

// Draw renders the status bar onto the screen using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1 // Status bar is always the last line

	sb.mu.Lock()
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string

	switch {
	case sb.promptText != "":
		text = sb.promptText
		style = sb.config.StylePrompt
	case isTempMsgActive:
		text = sb.tempMessage
		style = sb.config.StyleMessage
	default:
		text = sb.getDefaultDisplayText()
		style = sb.config.StyleDefault
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	// Draw text using uniseg for width calculation.
	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}

		runes := gr.Runes()
		if len(runes) > 0 {
			mainRune := runes[0]
			var combiningRunes []rune
			if len(runes) > 1 {
				combiningRunes = runes[1:]
			}
			screen.SetContent(currentX, y, mainRune, combiningRunes, style)
		}

		currentX += clusterWidth
	}
}
