package docstats

import (
	"fmt"
	"testing"

	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/metrics"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	stats    metrics.Stats
	commands map[string]plugin.CommandFunc
	message  string
}

func newStubAPI() *stubAPI {
	return &stubAPI{commands: make(map[string]plugin.CommandFunc)}
}

func (s *stubAPI) GetContent() string { return "" }
func (s *stubAPI) GetContentLen() int { return 0 }
func (s *stubAPI) GetFilePath() string { return "" }
func (s *stubAPI) IsModified() bool { return false }
func (s *stubAPI) InsertFragment(string) {}
func (s *stubAPI) GetCursor() int { return 0 }
func (s *stubAPI) SetCursor(int) {}
func (s *stubAPI) GetSelection() (types.Selection, bool) {
	return types.Selection{}, false
}
func (s *stubAPI) GetStats() metrics.Stats { return s.stats }
func (s *stubAPI) DispatchEvent(event.Type, interface{}) {}
func (s *stubAPI) SubscribeEvent(event.Type, event.Handler) {}
func (s *stubAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	s.commands[name] = fn
	return nil
}
func (s *stubAPI) SetStatusMessage(format string, args ...interface{}) {
	s.message = fmt.Sprintf(format, args...)
}
func (s *stubAPI) SaveDocument() error { return nil }

func TestStatsCommand(t *testing.T) {
	api := newStubAPI()
	api.stats = metrics.Stats{Words: 201, Chars: 1000, ReadMinutes: 2}

	p := New()
	require.NoError(t, p.Initialize(api))

	cmd, ok := api.commands["stats"]
	require.True(t, ok, "plugin registers a stats command")

	require.NoError(t, cmd(nil))
	assert.Equal(t, "Words: 201, Chars: 1000, Reading time: ~2 min", api.message)

	assert.NoError(t, p.Shutdown())
}

func TestName(t *testing.T) {
	assert.Equal(t, "docstats", New().Name())
}
