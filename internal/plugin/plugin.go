// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/metrics"
	"github.com/bethropolis/quill/internal/types"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes arguments (e.g., from user input) and returns an error.
type CommandFunc func(args []string) error

// EditorAPI defines the methods plugins can use to interact with the editor
// core. This is a controlled interface, preventing plugins from accessing
// everything.
type EditorAPI interface {
	// --- Buffer Access ---
	GetContent() string
	GetContentLen() int // In runes
	GetFilePath() string
	IsModified() bool

	// --- Buffer Modification ---
	// Inserts a fragment at the cursor as a programmatic insertion
	// (recorded in history like any toolbar insert).
	InsertFragment(fragment string)

	// --- Cursor & Selection ---
	GetCursor() int
	SetCursor(offset int)
	GetSelection() (types.Selection, bool)

	// --- Metrics ---
	GetStats() metrics.Stats

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Document I/O ---
	SaveDocument() error
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded. It receives the
	// EditorAPI for setup, subscribing to events, registering commands.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
