// internal/editor/insert.go
package editor

import (
	"github.com/bethropolis/quill/internal/types"
)

// RequestKind discriminates the insertion request variants.
type RequestKind int

const (
	// RequestWrap surrounds the selection with a before/after pair.
	RequestWrap RequestKind = iota
	// RequestInsertAt splices a fragment in at the selection start,
	// replacing any selected text.
	RequestInsertAt
)

// Request is the tagged union of insertion requests the engine consumes.
// Display metadata (labels, enablement) lives in the toolbar layer; the
// engine only sees the strings to splice.
type Request struct {
	Kind     RequestKind
	Before   string // RequestWrap
	After    string // RequestWrap
	Fragment string // RequestInsertAt
}

// Wrap builds a wrap request.
func Wrap(before, after string) Request {
	return Request{Kind: RequestWrap, Before: before, After: after}
}

// InsertAt builds a point-insertion request.
func InsertAt(fragment string) Request {
	return Request{Kind: RequestInsertAt, Fragment: fragment}
}

// ApplyWrap splices before and after around the selected range and returns
// the new buffer plus the new cursor offset. The cursor lands immediately
// after the preserved selected text, at the boundary with the after
// fragment. Offsets and lengths are in runes. Pure function; empty strings
// are valid and degenerate to no-ops on content.
func ApplyWrap(buf string, sel types.Selection, before, after string) (string, int) {
	runes := []rune(buf)
	sel = sel.Normalized().Clamp(len(runes))

	var b []rune
	b = append(b, runes[:sel.Start]...)
	b = append(b, []rune(before)...)
	b = append(b, runes[sel.Start:sel.End]...)
	b = append(b, []rune(after)...)
	b = append(b, runes[sel.End:]...)

	newCursor := sel.Start + len([]rune(before)) + sel.Len()
	return string(b), newCursor
}

// ApplyInsertAt splices fragment in at the given rune offset and returns the
// new buffer plus the new cursor offset (just past the fragment).
func ApplyInsertAt(buf string, offset int, fragment string) (string, int) {
	runes := []rune(buf)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	var b []rune
	b = append(b, runes[:offset]...)
	b = append(b, []rune(fragment)...)
	b = append(b, runes[offset:]...)

	newCursor := offset + len([]rune(fragment))
	return string(b), newCursor
}

// Apply dispatches a request against the buffer and selection. For
// RequestInsertAt any selected text is removed first, so the fragment
// replaces the selection.
func Apply(buf string, sel types.Selection, req Request) (string, int) {
	switch req.Kind {
	case RequestWrap:
		return ApplyWrap(buf, sel, req.Before, req.After)
	case RequestInsertAt:
		sel = sel.Normalized().Clamp(len([]rune(buf)))
		if !sel.IsCaret() {
			runes := []rune(buf)
			buf = string(runes[:sel.Start]) + string(runes[sel.End:])
		}
		return ApplyInsertAt(buf, sel.Start, req.Fragment)
	default:
		return buf, sel.Normalized().Start
	}
}
