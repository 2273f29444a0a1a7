// internal/plugin/manager.go
package plugin

import (
	"fmt"
	"sync"

	"github.com/bethropolis/quill/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
type Manager struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	api     EditorAPI
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin instance to the manager.
// This should be called before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	logger.Debugf("Plugin Manager: Registered plugin '%s'", name)
	return nil
}

// InitializePlugins calls Initialize on every registered plugin with the
// given API. Failures are logged, not fatal; the remaining plugins still
// initialize.
func (m *Manager) InitializePlugins(api EditorAPI) {
	m.mu.Lock()
	m.api = api
	pluginsToInit := make([]Plugin, 0, len(m.plugins))
	for _, p := range m.plugins {
		pluginsToInit = append(pluginsToInit, p)
	}
	m.mu.Unlock()

	logger.Debugf("Plugin Manager: Initializing %d plugins...", len(pluginsToInit))
	for _, p := range pluginsToInit {
		if err := p.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: Error initializing plugin '%s': %v", p.Name(), err)
		} else {
			logger.Debugf("Plugin Manager: Initialized plugin '%s'", p.Name())
		}
	}
}

// ShutdownPlugins calls Shutdown on all registered plugins.
func (m *Manager) ShutdownPlugins() {
	m.mu.RLock()
	pluginsToShutdown := make([]Plugin, 0, len(m.plugins))
	for _, p := range m.plugins {
		pluginsToShutdown = append(pluginsToShutdown, p)
	}
	m.mu.RUnlock()

	for _, p := range pluginsToShutdown {
		if err := p.Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: Error shutting down plugin '%s': %v", p.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name. Use cautiously.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}
