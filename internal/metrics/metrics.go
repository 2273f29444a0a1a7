// Package metrics computes derived display statistics for the buffer.
//
// These are pure functions of the current text and are recomputed on every
// buffer change; none of them participate in undo/redo state.
package metrics

import (
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultReadingWPM is the assumed reading speed in words per minute.
const DefaultReadingWPM = 200

// Stats bundles the derived metrics for one buffer value.
type Stats struct {
	Words       int
	Chars       int
	ReadMinutes int
}

// Words counts whitespace-delimited non-empty tokens.
func Words(text string) int {
	return len(strings.Fields(text))
}

// Chars counts user-perceived characters (grapheme clusters).
func Chars(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// ReadMinutes estimates reading time as ceil(words/wpm).
// Non-positive wpm falls back to DefaultReadingWPM.
func ReadMinutes(words, wpm int) int {
	if wpm <= 0 {
		wpm = DefaultReadingWPM
	}
	return (words + wpm - 1) / wpm
}

// Compute returns all metrics for the given text at the given reading speed.
func Compute(text string, wpm int) Stats {
	words := Words(text)
	return Stats{
		Words:       words,
		Chars:       Chars(text),
		ReadMinutes: ReadMinutes(words, wpm),
	}
}
