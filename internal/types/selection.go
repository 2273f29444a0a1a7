// internal/types/selection.go
package types

// Selection represents a half-open rune-offset range [Start, End) within the
// buffer. Start and End are 0-based rune indices. A caret (no selected text)
// is a Selection with Start == End.
// Using rune indices is important for Unicode handling.
type Selection struct {
	Start int // Rune index of the first selected rune
	End   int // Rune index one past the last selected rune
}

// Caret returns a zero-width Selection at the given rune offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// IsCaret reports whether the selection covers no text.
func (s Selection) IsCaret() bool {
	return s.Start == s.End
}

// Len returns the number of selected runes.
func (s Selection) Len() int {
	return s.End - s.Start
}

// Normalized returns the selection with Start <= End.
func (s Selection) Normalized() Selection {
	if s.Start > s.End {
		return Selection{Start: s.End, End: s.Start}
	}
	return s
}

// Clamp constrains both ends of the selection to [0, bufLen].
func (s Selection) Clamp(bufLen int) Selection {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > bufLen {
			return bufLen
		}
		return v
	}
	return Selection{Start: clamp(s.Start), End: clamp(s.End)}
}
