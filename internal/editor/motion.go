// internal/editor/motion.go
package editor

// Line-aware caret motion over the flat buffer. The buffer has no line
// structure of its own; these helpers scan for newlines around the caret.

// lineBounds returns the rune offsets of the start of the caret's line and
// of the newline ending it (or buffer end).
func (e *Editor) lineBounds(offset int) (start, end int) {
	runes := []rune(e.doc.Content())
	if offset > len(runes) {
		offset = len(runes)
	}
	start = 0
	for i := offset - 1; i >= 0; i-- {
		if runes[i] == '\n' {
			start = i + 1
			break
		}
	}
	end = len(runes)
	for i := offset; i < len(runes); i++ {
		if runes[i] == '\n' {
			end = i
			break
		}
	}
	return start, end
}

// MoveHome moves the caret to the start of its line.
func (e *Editor) MoveHome() {
	e.ClearSelection()
	start, _ := e.lineBounds(e.Cursor)
	e.Cursor = start
	e.notifyCursorMoved()
}

// MoveEnd moves the caret to the end of its line.
func (e *Editor) MoveEnd() {
	e.ClearSelection()
	_, end := e.lineBounds(e.Cursor)
	e.Cursor = end
	e.notifyCursorMoved()
}

// MoveCursorVert moves the caret one line up (delta < 0) or down (delta > 0),
// keeping the column where the line allows it.
func (e *Editor) MoveCursorVert(delta int) {
	e.ClearSelection()
	if delta == 0 {
		return
	}

	start, end := e.lineBounds(e.Cursor)
	col := e.Cursor - start

	if delta < 0 {
		if start == 0 {
			e.Cursor = 0
		} else {
			prevStart, prevEnd := e.lineBounds(start - 1)
			e.Cursor = prevStart + min(col, prevEnd-prevStart)
		}
	} else {
		runes := e.doc.Len()
		if end >= runes {
			e.Cursor = runes
		} else {
			nextStart, nextEnd := e.lineBounds(end + 1)
			e.Cursor = nextStart + min(col, nextEnd-nextStart)
		}
	}

	e.clampCursor()
	e.notifyCursorMoved()
}
