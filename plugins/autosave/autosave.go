// plugins/autosave/autosave.go
package autosave

import (
	"sync"
	"time"

	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/plugin"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const defaultInterval = 1 * time.Minute

// AutoSave periodically saves the document while it has unsaved changes.
type AutoSave struct {
	api      plugin.EditorAPI
	interval time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a new AutoSave plugin. A non-positive interval falls back to
// the default.
func New(interval time.Duration) *AutoSave {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &AutoSave{interval: interval}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize starts the save loop.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	p.stopChan = make(chan struct{})

	p.wg.Add(1)
	go p.run()

	logger.Debugf("autosave: started with interval %v", p.interval)
	return nil
}

// Shutdown stops the save loop.
func (p *AutoSave) Shutdown() error {
	if p.stopChan != nil {
		close(p.stopChan)
		p.wg.Wait()
	}
	return nil
}

func (p *AutoSave) run() {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.maybeSave()
		case <-p.stopChan:
			return
		}
	}
}

// maybeSave saves only when the document is bound to a file and dirty.
func (p *AutoSave) maybeSave() {
	if p.api.GetFilePath() == "" || !p.api.IsModified() {
		return
	}
	if err := p.api.SaveDocument(); err != nil {
		logger.Warnf("autosave: save failed: %v", err)
		return
	}
	p.api.SetStatusMessage("Autosaved %s", p.api.GetFilePath())
}
