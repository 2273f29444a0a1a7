// internal/app/editor_api.go
package app

import (
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/metrics"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/types"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
type appEditorAPI struct {
	app *App // Reference back to the main application
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Buffer Access ---

func (api *appEditorAPI) GetContent() string {
	return api.app.editor.Content()
}

func (api *appEditorAPI) GetContentLen() int {
	return api.app.editor.Document().Len()
}

func (api *appEditorAPI) GetFilePath() string {
	return api.app.editor.Document().FilePath()
}

func (api *appEditorAPI) IsModified() bool {
	return api.app.editor.Document().IsModified()
}

// --- Buffer Modification ---

func (api *appEditorAPI) InsertFragment(fragment string) {
	api.app.editor.InsertBlock(fragment)
	api.app.requestRedraw()
}

// --- Cursor & Selection ---

func (api *appEditorAPI) GetCursor() int {
	return api.app.editor.Cursor
}

func (api *appEditorAPI) SetCursor(offset int) {
	api.app.editor.SetCursor(offset)
	api.app.requestRedraw()
}

func (api *appEditorAPI) GetSelection() (types.Selection, bool) {
	return api.app.editor.Selection()
}

// --- Metrics ---

func (api *appEditorAPI) GetStats() metrics.Stats {
	return metrics.Compute(api.app.editor.Content(), api.app.readingWPM)
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.SetStatusMessage(format, args...)
	api.app.requestRedraw()
}

// --- Document I/O ---

func (api *appEditorAPI) SaveDocument() error {
	return api.app.editor.SaveFile()
}
