// plugins/docstats/docstats.go
package docstats

import (
	"fmt"

	"github.com/bethropolis/quill/internal/plugin"
)

// Ensure DocStats implements plugin.Plugin
var _ plugin.Plugin = (*DocStats)(nil)

// DocStats is a simple plugin reporting word count, character count, and
// estimated reading time via a :stats command.
type DocStats struct {
	api plugin.EditorAPI
}

// New creates a new instance of the DocStats plugin.
func New() *DocStats {
	return &DocStats{}
}

// Name returns the unique name of the plugin.
func (p *DocStats) Name() string {
	return "docstats"
}

// Initialize registers the :stats command.
func (p *DocStats) Initialize(api plugin.EditorAPI) error {
	p.api = api

	if err := api.RegisterCommand("stats", p.executeStats); err != nil {
		return fmt.Errorf("failed to register 'stats' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *DocStats) Shutdown() error {
	return nil
}

// executeStats is the function called when the :stats command runs.
func (p *DocStats) executeStats(args []string) error {
	if p.api == nil {
		return fmt.Errorf("docstats plugin not initialized with API")
	}

	stats := p.api.GetStats()
	p.api.SetStatusMessage("Words: %d, Chars: %d, Reading time: ~%d min",
		stats.Words, stats.Chars, stats.ReadMinutes)
	return nil
}
