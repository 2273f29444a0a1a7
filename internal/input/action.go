// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit
	ActionForceQuit // Quit without checking modified status
	ActionSave

	// --- Cursor Movement ---
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp   // Previous line (surface decides the offset delta)
	ActionMoveDown // Next line
	ActionMoveHome // Beginning of buffer line
	ActionMoveEnd  // End of buffer line
	ActionSelectLeft
	ActionSelectRight
	ActionSelectAll

	// --- Text Manipulation ---
	ActionInsertRune    // Requires Rune argument
	ActionInsertNewline // Specific action for Enter
	ActionDeleteCharForward
	ActionDeleteCharBackward

	// --- History ---
	ActionUndo
	ActionRedo

	// --- Clipboard ---
	ActionYank
	ActionYankAll
	ActionPaste

	// --- Surfaces ---
	ActionOpenPalette      // Open the toolbar action palette
	ActionTogglePreview    // Switch between raw and preview views
	ActionEnterCommandMode // Open the ':' command line
	ActionCancel           // Esc: close palette/prompt or clear selection
	ActionConfirm          // Enter inside palette/prompt
)

// ActionEvent represents a decoded input event resulting in an action.
// It carries payload data needed for the action (like the rune to insert).
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
