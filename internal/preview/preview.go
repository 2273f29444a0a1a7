// Package preview renders the raw markup into styled lines for the preview
// pane. The buffer is tokenized purely for display coloring; nothing here
// validates or interprets the markup.
package preview

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

const defaultStyleName = "monokai"

// Segment is a run of text drawn with one style.
type Segment struct {
	Text  string
	Style tcell.Style
}

// Line is one display line of styled segments.
type Line []Segment

// Renderer tokenizes buffer text into styled preview lines.
type Renderer struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// NewRenderer creates a renderer using the HTML lexer and the named chroma
// style (empty name falls back to the default).
func NewRenderer(styleName string) *Renderer {
	lexer := lexers.Get("html")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	if styleName == "" {
		styleName = defaultStyleName
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Renderer{
		lexer: chroma.Coalesce(lexer),
		style: style,
	}
}

// Render tokenizes content and returns styled display lines. An empty
// buffer yields a single empty line.
func (r *Renderer) Render(content string) ([]Line, error) {
	tokens, err := chroma.Tokenise(r.lexer, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tokenising preview: %w", err)
	}

	lines := []Line{{}}
	for _, tok := range tokens {
		style := r.tokenStyle(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, Line{})
			}
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], Segment{Text: part, Style: style})
		}
	}
	return lines, nil
}

func (r *Renderer) tokenStyle(t chroma.TokenType) tcell.Style {
	entry := r.style.Get(t)
	style := tcell.StyleDefault
	if entry.Colour.IsSet() {
		style = style.Foreground(tcell.NewHexColor(int32(entry.Colour)))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}
