// internal/app/app.go
package app

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/editor"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/modehandler"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/preview"
	"github.com/bethropolis/quill/internal/statusbar"
	"github.com/bethropolis/quill/internal/tui"
	"github.com/bethropolis/quill/plugins/autosave"
	"github.com/bethropolis/quill/plugins/docstats"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager      *tui.TUI
	editor          *editor.Editor
	statusBar       *statusbar.StatusBar
	eventManager    *event.Manager
	pluginManager   *plugin.Manager
	modeHandler     *modehandler.ModeHandler
	previewRenderer *preview.Renderer
	editorAPI       plugin.EditorAPI
	filePath        string
	readingWPM      int

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}

	// afterDraw holds at most one continuation to run once the next frame
	// has been committed to the screen. Used to re-publish cursor focus
	// after a buffer replacement; a newly scheduled continuation simply
	// overwrites a stale one.
	afterDrawMu sync.Mutex
	afterDraw   func()
}

// NewApp creates and initializes a new application instance.
func NewApp(filePath string) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	cfg := config.Get()

	doc := buffer.NewDocument()
	if filePath != "" {
		if err := doc.Load(filePath); err != nil {
			tuiManager.Close()
			return nil, fmt.Errorf("loading %q failed: %w", filePath, err)
		}
	}

	ed := editor.NewEditor(doc, cfg.Editor.HistoryLimit)
	ed.SetSystemClipboard(cfg.Editor.SystemClipboard)

	inputProcessor := input.NewInputProcessor()
	statusBar := statusbar.New(statusbar.DefaultConfig())
	eventManager := event.NewManager()
	pluginManager := plugin.NewManager()
	quitChan := make(chan struct{})

	// Set event manager in editor so it can dispatch events
	ed.SetEventManager(eventManager)

	modeHandlerCfg := modehandler.Config{
		Editor:         ed,
		InputProcessor: inputProcessor,
		EventManager:   eventManager,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
	}
	modeHandler := modehandler.New(modeHandlerCfg)

	appInstance := &App{
		tuiManager:      tuiManager,
		editor:          ed,
		statusBar:       statusBar,
		eventManager:    eventManager,
		pluginManager:   pluginManager,
		modeHandler:     modeHandler,
		previewRenderer: preview.NewRenderer(""),
		filePath:        filePath,
		readingWPM:      cfg.Editor.ReadingWPM,
		quit:            quitChan,
		redrawRequest:   make(chan struct{}, 1),
	}

	// --- Create Editor API adapter ---
	editorAPI := newEditorAPI(appInstance)
	appInstance.editorAPI = editorAPI

	// --- Register Built-in Plugins ---
	if err := pluginManager.Register(docstats.New()); err != nil {
		logger.Debugf("Failed to register DocStats plugin: %v", err)
	}
	if err := pluginManager.Register(autosave.New(0)); err != nil {
		logger.Debugf("Failed to register AutoSave plugin: %v", err)
	}

	// --- Subscribe Core Components (App level wiring) ---
	eventManager.Subscribe(event.TypeBufferChanged, appInstance.handleBufferChanged)
	eventManager.Subscribe(event.TypeCursorMoved, appInstance.handleCursorMoved)
	eventManager.Subscribe(event.TypeHistoryChanged, appInstance.handleHistoryChanged)
	eventManager.Subscribe(event.TypeDocumentSaved, appInstance.handleDocumentSaved)
	eventManager.Subscribe(event.TypeDocumentLoaded, appInstance.handleDocumentLoaded)
	eventManager.Subscribe(event.TypeViewToggled, appInstance.handleViewToggled)

	// --- Initialize Plugins (triggers RegisterCommand via API) ---
	pluginManager.InitializePlugins(editorAPI)

	// Seed status bar state before the first frame.
	appInstance.updateStatusBarContent()
	appInstance.publishStats()

	return appInstance, nil
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Quill - Ctrl+K Insert | Ctrl+P Preview | Ctrl+S Save | Ctrl+Q Quit")
	a.requestRedraw()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit: // Wait for quit signal from ModeHandler
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.Document().IsModified() {
				log.Println("Warning: Exited with unsaved changes.")
			}
			logger.Infof("Exiting application.")
			return nil
		case <-ticker.C:
			// Keeps the temporary message timeout honest without key input.
			a.requestRedraw()
		case <-a.redrawRequest:
			a.draw()
			if fn := a.takeAfterDraw(); fn != nil {
				fn()
			}
		}
	}
}

// eventLoop handles TUI events, delegating key events to ModeHandler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true

		case *tcell.EventKey:
			// Delegate ALL key handling to ModeHandler
			needsRedraw = a.modeHandler.HandleKeyEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// scheduleAfterDraw records a continuation to run once the next frame is
// committed. At most one is pending; a later schedule replaces it.
func (a *App) scheduleAfterDraw(fn func()) {
	a.afterDrawMu.Lock()
	a.afterDraw = fn
	a.afterDrawMu.Unlock()
	a.requestRedraw()
}

func (a *App) takeAfterDraw() func() {
	a.afterDrawMu.Lock()
	defer a.afterDrawMu.Unlock()
	fn := a.afterDraw
	a.afterDraw = nil
	return fn
}
