package statusbar

import (
	"testing"
	"time"

	"github.com/bethropolis/quill/internal/metrics"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDisplayText(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetFileInfo("doc.html", true)
	sb.SetCursorInfo(42)
	sb.SetStats(metrics.Stats{Words: 201, Chars: 1100, ReadMinutes: 2})
	sb.SetHistoryInfo(true, false)
	sb.SetViewMode("edit")

	sb.mu.RLock()
	text := sb.getDefaultDisplayText()
	sb.mu.RUnlock()

	assert.Equal(t, "doc.html [Modified] -- @42 -- 201w 1100c ~2min ↶· -- edit", text)
}

func TestDefaultDisplayTextUnnamed(t *testing.T) {
	sb := New(DefaultConfig())

	sb.mu.RLock()
	text := sb.getDefaultDisplayText()
	sb.mu.RUnlock()

	assert.Contains(t, text, "[No Name]")
	assert.NotContains(t, text, "[Modified]")
	assert.Contains(t, text, "··")
}

func screenLine(t *testing.T, s tcell.SimulationScreen, y int) string {
	t.Helper()
	w, _ := s.Size()
	var out []rune
	for x := 0; x < w; x++ {
		c, _, _, _ := s.GetContent(x, y)
		out = append(out, c)
	}
	return string(out)
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(60, 5)
	return s
}

func TestDrawDefaultLine(t *testing.T) {
	s := newSimScreen(t)

	sb := New(DefaultConfig())
	sb.SetFileInfo("a.html", false)
	sb.Draw(s, 60, 5)
	s.Show()

	line := screenLine(t, s, 4)
	assert.Contains(t, line, "a.html")
}

func TestDrawPromptWinsOverMessage(t *testing.T) {
	s := newSimScreen(t)

	sb := New(DefaultConfig())
	sb.SetTemporaryMessage("saved ok")
	sb.SetPrompt(":stats")
	sb.Draw(s, 60, 5)
	s.Show()

	line := screenLine(t, s, 4)
	assert.Contains(t, line, ":stats")
	assert.NotContains(t, line, "saved ok")
}

func TestTemporaryMessageExpires(t *testing.T) {
	s := newSimScreen(t)

	cfg := DefaultConfig()
	cfg.MessageTimeout = 10 * time.Millisecond
	sb := New(cfg)
	sb.SetFileInfo("b.html", false)
	sb.SetTemporaryMessage("fleeting")

	sb.Draw(s, 60, 5)
	assert.Contains(t, screenLine(t, s, 4), "fleeting")

	time.Sleep(20 * time.Millisecond)
	sb.Draw(s, 60, 5)
	line := screenLine(t, s, 4)
	assert.NotContains(t, line, "fleeting")
	assert.Contains(t, line, "b.html")
}

func TestResetTemporaryMessage(t *testing.T) {
	s := newSimScreen(t)

	sb := New(DefaultConfig())
	sb.SetFileInfo("c.html", false)
	sb.SetTemporaryMessage("oops")
	sb.ResetTemporaryMessage()

	sb.Draw(s, 60, 5)
	assert.NotContains(t, screenLine(t, s, 4), "oops")
}

func TestDrawTruncatesToWidth(t *testing.T) {
	s := newSimScreen(t)

	sb := New(DefaultConfig())
	sb.SetPrompt("0123456789")
	assert.NotPanics(t, func() {
		sb.Draw(s, 4, 5)
	})
}
