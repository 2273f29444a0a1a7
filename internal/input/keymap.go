// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps plain runes to actions (beyond the default insert).
type RuneKeymap map[rune]Action

// InputProcessor translates tcell events into ActionEvents. Mode-specific
// interpretation (edit vs palette vs prompt) happens in the mode handler,
// not here.
type InputProcessor struct {
	keymap      Keymap
	shiftKeymap Keymap // Shift + special key (selection extension)
	runeKeymap  RuneKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:      make(Keymap),
		shiftKeymap: make(Keymap),
		runeKeymap:  make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionCancel
	p.keymap[tcell.KeyEnter] = ActionInsertNewline

	p.shiftKeymap[tcell.KeyLeft] = ActionSelectLeft
	p.shiftKeymap[tcell.KeyRight] = ActionSelectRight

	// Ctrl combinations arrive as dedicated tcell keys.
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlQ] = ActionQuit
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlA] = ActionSelectAll
	p.keymap[tcell.KeyCtrlC] = ActionYank
	p.keymap[tcell.KeyCtrlX] = ActionYankAll
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlK] = ActionOpenPalette
	p.keymap[tcell.KeyCtrlP] = ActionTogglePreview
	p.keymap[tcell.KeyCtrlE] = ActionEnterCommandMode
}

// ProcessEvent takes a tcell key event and returns the corresponding
// ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// Shift + special key extends the selection.
	if mod&tcell.ModShift != 0 {
		if action, ok := p.shiftKeymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// tcell Ctrl keys already encode the modifier in the Key value.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	if key == tcell.KeyRune && mod == tcell.ModNone {
		if action, ok := p.runeKeymap[runeVal]; ok {
			return ActionEvent{Action: action, Rune: runeVal}
		}
		// Default: a plain rune is an insertion request; the mode handler
		// decides whether it lands in the buffer or a prompt field.
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	return ActionEvent{Action: ActionUnknown}
}
