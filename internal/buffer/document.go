// Package buffer owns the document text the editor operates on.
//
// The document is a flat string; no line structure or markup structure is
// assumed. All offsets handed to Slice are rune indices.
package buffer

import (
	"errors"
	"fmt"
	"os"
)

// Document holds the full text content plus its file identity.
type Document struct {
	content  string
	runes    []rune // cached rune view of content
	filePath string
	modified bool
}

// NewDocument creates an empty, unnamed document.
func NewDocument() *Document {
	return &Document{content: "", runes: []rune{}}
}

// Load reads the file at filePath into the document. A missing file yields
// an empty document bound to that path, not an error.
func (d *Document) Load(filePath string) error {
	d.modified = false
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			d.setContent("")
			d.filePath = filePath
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	d.setContent(string(data))
	d.filePath = filePath
	return nil
}

// Save writes the content to filePath (or the document's own path when empty).
func (d *Document) Save(filePath string) error {
	path := d.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	if err := os.WriteFile(path, []byte(d.content), 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	d.filePath = path
	d.modified = false
	return nil
}

// Content returns the full text.
func (d *Document) Content() string {
	return d.content
}

// SetContent replaces the full text and marks the document modified.
func (d *Document) SetContent(text string) {
	if text == d.content {
		return
	}
	d.setContent(text)
	d.modified = true
}

func (d *Document) setContent(text string) {
	d.content = text
	d.runes = []rune(text)
}

// Len returns the text length in runes.
func (d *Document) Len() int {
	return len(d.runes)
}

// Slice returns the text between the rune offsets [start, end).
// Offsets are clamped to the document bounds.
func (d *Document) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(d.runes) {
		end = len(d.runes)
	}
	if start >= end {
		return ""
	}
	return string(d.runes[start:end])
}

// FilePath returns the file the document is bound to, if any.
func (d *Document) FilePath() string {
	return d.filePath
}

// IsModified reports whether the content changed since load/save.
func (d *Document) IsModified() bool {
	return d.modified
}
