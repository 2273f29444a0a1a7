package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPairs(t *testing.T) {
	tests := []struct {
		name   string
		pair   WrapPair
		before string
		after  string
	}{
		{"bold", Bold, "<strong>", "</strong>"},
		{"italic", Italic, "<em>", "</em>"},
		{"underline", Underline, "<u>", "</u>"},
		{"strikethrough", Strikethrough, "<s>", "</s>"},
		{"superscript", Superscript, "<sup>", "</sup>"},
		{"subscript", Subscript, "<sub>", "</sub>"},
		{"blockquote", Blockquote, "<blockquote>", "</blockquote>"},
		{"inline code", InlineCode, "<code>", "</code>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.before, tt.pair.Before)
			assert.Equal(t, tt.after, tt.pair.After)
		})
	}
}

func TestHeading(t *testing.T) {
	assert.Equal(t, WrapPair{"<h1>", "</h1>"}, Heading(1))
	assert.Equal(t, WrapPair{"<h3>", "</h3>"}, Heading(3))
	assert.Equal(t, WrapPair{"<h6>", "</h6>"}, Heading(6))

	// Out of range clamps.
	assert.Equal(t, WrapPair{"<h1>", "</h1>"}, Heading(0))
	assert.Equal(t, WrapPair{"<h1>", "</h1>"}, Heading(-3))
	assert.Equal(t, WrapPair{"<h6>", "</h6>"}, Heading(7))
}

func TestAlign(t *testing.T) {
	for _, a := range []Alignment{AlignLeft, AlignCenter, AlignRight, AlignJustify} {
		pair := Align(a)
		assert.Equal(t, `<div style="text-align: `+string(a)+`;">`, pair.Before)
		assert.Equal(t, "</div>", pair.After)
	}
}

func TestColorWraps(t *testing.T) {
	assert.Equal(t, `<span style="color: #e11d48;">`, ColorSpan("#e11d48").Before)
	assert.Equal(t, "</span>", ColorSpan("#e11d48").After)

	assert.Equal(t, `<mark style="background-color: #fde047;">`, Highlight("#fde047").Before)
	assert.Equal(t, "</mark>", Highlight("#fde047").After)
}

func TestLists(t *testing.T) {
	wantUL := "<ul>\n" +
		"  <li>First item</li>\n" +
		"  <li>Second item</li>\n" +
		"  <li>Third item</li>\n" +
		"</ul>\n"
	assert.Equal(t, wantUL, UnorderedList())

	ol := OrderedList()
	assert.True(t, strings.HasPrefix(ol, "<ol>\n"))
	assert.True(t, strings.HasSuffix(ol, "</ol>\n"))
	assert.Equal(t, 3, strings.Count(ol, "<li>"))
}

func TestCodeBlock(t *testing.T) {
	assert.Equal(t, "<pre><code>\n// your code here\n</code></pre>\n", CodeBlock())
}

func TestHorizontalRule(t *testing.T) {
	assert.Equal(t, "<hr>\n", HorizontalRule())
}

func TestAnchor(t *testing.T) {
	t.Run("same tab", func(t *testing.T) {
		assert.Equal(t, `<a href="https://example.com">Example</a>`,
			Anchor("https://example.com", "Example", false))
	})

	t.Run("new tab adds rel attributes", func(t *testing.T) {
		assert.Equal(t, `<a href="https://example.com" target="_blank" rel="noopener noreferrer">Example</a>`,
			Anchor("https://example.com", "Example", true))
	})

	t.Run("empty text falls back to href", func(t *testing.T) {
		assert.Equal(t, `<a href="https://example.com">https://example.com</a>`,
			Anchor("https://example.com", "", false))
	})
}

func TestFigure(t *testing.T) {
	t.Run("with caption", func(t *testing.T) {
		want := "<figure>\n" +
			"  <img src=\"cat.png\" alt=\"a cat\">\n" +
			"  <figcaption>My cat</figcaption>\n" +
			"</figure>\n"
		assert.Equal(t, want, Figure("cat.png", "a cat", "My cat"))
	})

	t.Run("empty caption omits figcaption", func(t *testing.T) {
		got := Figure("cat.png", "a cat", "")
		assert.NotContains(t, got, "figcaption")
	})
}
