package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentIsEmpty(t *testing.T) {
	d := NewDocument()
	assert.Equal(t, "", d.Content())
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.IsModified())
	assert.Equal(t, "", d.FilePath())
}

func TestLoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>hi</p>"), 0o644))

	d := NewDocument()
	require.NoError(t, d.Load(path))

	assert.Equal(t, "<p>hi</p>", d.Content())
	assert.Equal(t, path, d.FilePath())
	assert.False(t, d.IsModified())
}

func TestLoadMissingFileBindsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.html")

	d := NewDocument()
	require.NoError(t, d.Load(path))

	assert.Equal(t, "", d.Content())
	assert.Equal(t, path, d.FilePath())
}

func TestSetContentMarksModified(t *testing.T) {
	d := NewDocument()
	d.SetContent("text")
	assert.True(t, d.IsModified())
	assert.Equal(t, "text", d.Content())

	// Setting the same value again is a no-op.
	d2 := NewDocument()
	d2.SetContent("")
	assert.False(t, d2.IsModified())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")

	d := NewDocument()
	d.SetContent("<h1>title</h1>")
	require.NoError(t, d.Save(path))

	assert.False(t, d.IsModified())
	assert.Equal(t, path, d.FilePath())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<h1>title</h1>", string(data))
}

func TestSaveWithoutPath(t *testing.T) {
	d := NewDocument()
	d.SetContent("x")
	assert.Error(t, d.Save(""))
}

func TestLenIsRuneCount(t *testing.T) {
	d := NewDocument()
	d.SetContent("héllo")
	assert.Equal(t, 5, d.Len())
}

func TestSlice(t *testing.T) {
	d := NewDocument()
	d.SetContent("héllo wörld")

	assert.Equal(t, "héllo", d.Slice(0, 5))
	assert.Equal(t, "wörld", d.Slice(6, 11))
	assert.Equal(t, "", d.Slice(3, 3))

	// Out-of-range offsets clamp instead of panicking.
	assert.Equal(t, "héllo wörld", d.Slice(-4, 99))
	assert.Equal(t, "", d.Slice(9, 2))
}
