// internal/tui/drawing.go
package tui

import (
	"strings"

	"github.com/bethropolis/quill/internal/editor"
	"github.com/bethropolis/quill/internal/preview"
	"github.com/bethropolis/quill/internal/toolbar"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

var (
	styleDefault   = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleCursor    = tcell.StyleDefault.Reverse(true).Blink(true)
	stylePalette   = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	styleSelected  = tcell.StyleDefault.Background(tcell.ColorDarkCyan).Foreground(tcell.ColorBlack).Bold(true)
)

// DrawEditor draws the raw buffer with cursor and selection styling. The
// viewport scrolls vertically to keep the cursor line visible.
func (t *TUI) DrawEditor(ed *editor.Editor, statusBarHeight int) {
	width, height := t.Size()
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	lines := strings.Split(ed.Content(), "\n")
	sel, hasSel := ed.Selection()

	cursorLine, cursorCol := offsetToLineCol(lines, ed.Cursor)
	t.ensureVisible(cursorLine, viewHeight)

	runeOffset := 0 // Rune offset of the start of the current line
	for lineIdx := 0; lineIdx < len(lines); lineIdx++ {
		lineRunes := []rune(lines[lineIdx])
		screenY := lineIdx - t.viewY

		if screenY >= 0 && screenY < viewHeight {
			for fillX := 0; fillX < width; fillX++ {
				t.screen.SetContent(fillX, screenY, ' ', nil, styleDefault)
			}

			currentX := 0
			gr := uniseg.NewGraphemes(lines[lineIdx])
			runeIdx := 0
			for gr.Next() {
				clusterRunes := gr.Runes()
				clusterWidth := gr.Width()
				if currentX+clusterWidth > width {
					break
				}

				style := styleDefault
				absOffset := runeOffset + runeIdx
				if hasSel && absOffset >= sel.Start && absOffset < sel.End {
					style = styleSelection
				}
				if lineIdx == cursorLine && runeIdx == cursorCol {
					style = styleCursor
				}

				mainRune := clusterRunes[0]
				var combining []rune
				if len(clusterRunes) > 1 {
					combining = clusterRunes[1:]
				}
				t.screen.SetContent(currentX, screenY, mainRune, combining, style)

				currentX += clusterWidth
				runeIdx += len(clusterRunes)
			}

			// Cursor sitting at end of line (past the last rune).
			if lineIdx == cursorLine && cursorCol >= len(lineRunes) && currentX < width {
				t.screen.SetContent(currentX, screenY, ' ', nil, styleCursor)
			}
		}

		runeOffset += len(lineRunes) + 1 // +1 for the newline
	}
}

// DrawPreview draws pre-rendered styled lines for the preview pane.
func (t *TUI) DrawPreview(lines []preview.Line, statusBarHeight int) {
	width, height := t.Size()
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	if t.viewY > len(lines)-1 {
		t.viewY = 0
	}

	for screenY := 0; screenY < viewHeight; screenY++ {
		for fillX := 0; fillX < width; fillX++ {
			t.screen.SetContent(fillX, screenY, ' ', nil, styleDefault)
		}

		lineIdx := screenY + t.viewY
		if lineIdx >= len(lines) {
			continue
		}

		currentX := 0
		for _, seg := range lines[lineIdx] {
			gr := uniseg.NewGraphemes(seg.Text)
			for gr.Next() {
				clusterRunes := gr.Runes()
				clusterWidth := gr.Width()
				if currentX+clusterWidth > width {
					break
				}
				mainRune := clusterRunes[0]
				var combining []rune
				if len(clusterRunes) > 1 {
					combining = clusterRunes[1:]
				}
				t.screen.SetContent(currentX, screenY, mainRune, combining, seg.Style)
				currentX += clusterWidth
			}
		}
	}
}

// DrawPalette overlays the toolbar action list, highlighting the selected
// entry. Column width comes from the widest label.
func (t *TUI) DrawPalette(selected int, statusBarHeight int) {
	width, height := t.Size()
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	labelWidth := 0
	for _, item := range toolbar.Items {
		if w := runewidth.StringWidth(item.Label); w > labelWidth {
			labelWidth = w
		}
	}
	boxWidth := labelWidth + 8 // icon column + padding
	if boxWidth > width {
		boxWidth = width
	}

	// Scroll the list so the selected entry stays visible.
	top := 0
	if selected >= viewHeight {
		top = selected - viewHeight + 1
	}

	for row := 0; row < viewHeight && top+row < len(toolbar.Items); row++ {
		item := toolbar.Items[top+row]
		style := stylePalette
		if top+row == selected {
			style = styleSelected
		}

		text := " " + runewidth.FillRight(item.Icon, 3) + " " + runewidth.FillRight(item.Label, boxWidth-6) + " "
		currentX := 0
		for _, r := range text {
			if currentX >= boxWidth {
				break
			}
			t.screen.SetContent(currentX, row, r, nil, style)
			currentX += runewidth.RuneWidth(r)
		}
		for ; currentX < boxWidth; currentX++ {
			t.screen.SetContent(currentX, row, ' ', nil, style)
		}
	}
}

// offsetToLineCol converts a flat rune offset into (line, column) over the
// split lines.
func offsetToLineCol(lines []string, offset int) (int, int) {
	remaining := offset
	for i, line := range lines {
		lineLen := len([]rune(line))
		if remaining <= lineLen {
			return i, remaining
		}
		remaining -= lineLen + 1 // +1 for the newline
	}
	return len(lines) - 1, len([]rune(lines[len(lines)-1]))
}
