// Package markup holds the HTML fragment catalog the editor inserts.
//
// Fragments are plain strings; nothing here parses or validates HTML. Field
// values (URLs, captions, colors) are spliced in verbatim and any rendering
// anomaly is left to the preview surface.
package markup

import (
	"fmt"
	"strings"
)

// WrapPair is a before/after tag pair that surrounds a selection.
type WrapPair struct {
	Before string
	After  string
}

// Paired wraps, keyed by style name.
var (
	Bold          = WrapPair{"<strong>", "</strong>"}
	Italic        = WrapPair{"<em>", "</em>"}
	Underline     = WrapPair{"<u>", "</u>"}
	Strikethrough = WrapPair{"<s>", "</s>"}
	Superscript   = WrapPair{"<sup>", "</sup>"}
	Subscript     = WrapPair{"<sub>", "</sub>"}
	Blockquote    = WrapPair{"<blockquote>", "</blockquote>"}
	InlineCode    = WrapPair{"<code>", "</code>"}
)

// Heading returns the wrap pair for heading levels 1 through 6.
// Out-of-range levels are clamped rather than rejected.
func Heading(level int) WrapPair {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return WrapPair{fmt.Sprintf("<h%d>", level), fmt.Sprintf("</h%d>", level)}
}

// Alignment identifies one of the four text-alignment wrappers.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Align returns the alignment div wrapper for the given alignment.
func Align(a Alignment) WrapPair {
	return WrapPair{fmt.Sprintf(`<div style="text-align: %s;">`, a), "</div>"}
}

// ColorSpan returns a wrap pair styling the selection's text color.
func ColorSpan(color string) WrapPair {
	return WrapPair{fmt.Sprintf(`<span style="color: %s;">`, color), "</span>"}
}

// Highlight returns a wrap pair styling the selection's background color.
func Highlight(color string) WrapPair {
	return WrapPair{fmt.Sprintf(`<mark style="background-color: %s;">`, color), "</mark>"}
}

// UnorderedList returns a three-item placeholder list block.
func UnorderedList() string {
	return listBlock("ul")
}

// OrderedList returns a three-item placeholder ordered list block.
func OrderedList() string {
	return listBlock("ol")
}

func listBlock(tag string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<%s>\n", tag)
	for _, item := range []string{"First item", "Second item", "Third item"} {
		fmt.Fprintf(&b, "  <li>%s</li>\n", item)
	}
	fmt.Fprintf(&b, "</%s>\n", tag)
	return b.String()
}

// CodeBlock returns a pre/code block with a comment placeholder.
func CodeBlock() string {
	return "<pre><code>\n// your code here\n</code></pre>\n"
}

// HorizontalRule returns a horizontal rule element.
func HorizontalRule() string {
	return "<hr>\n"
}

// Anchor returns an anchor tag. When newTab is set, target and the
// rel security attributes are included.
func Anchor(href, text string, newTab bool) string {
	if text == "" {
		text = href
	}
	if newTab {
		return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`, href, text)
	}
	return fmt.Sprintf(`<a href="%s">%s</a>`, href, text)
}

// Figure returns a figure block with an image and an optional caption.
// An empty caption omits the figcaption element entirely.
func Figure(src, alt, caption string) string {
	var b strings.Builder
	b.WriteString("<figure>\n")
	fmt.Fprintf(&b, "  <img src=\"%s\" alt=\"%s\">\n", src, alt)
	if caption != "" {
		fmt.Fprintf(&b, "  <figcaption>%s</figcaption>\n", caption)
	}
	b.WriteString("</figure>\n")
	return b.String()
}
