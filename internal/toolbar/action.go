// Package toolbar enumerates the user-facing insertion actions and their
// display metadata. The editor core never sees any of this; each action is
// resolved here into a plain insertion request before it reaches the engine.
package toolbar

import (
	"strconv"

	"github.com/bethropolis/quill/internal/editor"
	"github.com/bethropolis/quill/internal/markup"
)

// Action identifies one toolbar entry.
type Action int

const (
	ActionUnknown Action = iota

	// Paired wraps
	ActionBold
	ActionItalic
	ActionUnderline
	ActionStrikethrough
	ActionSuperscript
	ActionSubscript
	ActionHeading1
	ActionHeading2
	ActionHeading3
	ActionHeading4
	ActionHeading5
	ActionHeading6
	ActionQuote
	ActionInlineCode
	ActionAlignLeft
	ActionAlignCenter
	ActionAlignRight
	ActionAlignJustify

	// Block inserts
	ActionBulletList
	ActionNumberList
	ActionCodeBlock
	ActionRule
	ActionTable
	ActionImage
	ActionLink

	// Styled wraps with a color field
	ActionTextColor
	ActionHighlight
)

// Field describes one prompt field an action needs before it can build its
// insertion request.
type Field struct {
	Name     string
	Label    string
	Required bool
	Default  string
}

// Item carries the display metadata for one action.
type Item struct {
	Action Action
	Label  string
	Icon   string
	Fields []Field
}

// Items is the toolbar catalog, in display order.
var Items = []Item{
	{Action: ActionBold, Label: "Bold", Icon: "B"},
	{Action: ActionItalic, Label: "Italic", Icon: "I"},
	{Action: ActionUnderline, Label: "Underline", Icon: "U"},
	{Action: ActionStrikethrough, Label: "Strikethrough", Icon: "S"},
	{Action: ActionSuperscript, Label: "Superscript", Icon: "x²"},
	{Action: ActionSubscript, Label: "Subscript", Icon: "x₂"},
	{Action: ActionHeading1, Label: "Heading 1", Icon: "H1"},
	{Action: ActionHeading2, Label: "Heading 2", Icon: "H2"},
	{Action: ActionHeading3, Label: "Heading 3", Icon: "H3"},
	{Action: ActionHeading4, Label: "Heading 4", Icon: "H4"},
	{Action: ActionHeading5, Label: "Heading 5", Icon: "H5"},
	{Action: ActionHeading6, Label: "Heading 6", Icon: "H6"},
	{Action: ActionQuote, Label: "Quote", Icon: "\""},
	{Action: ActionInlineCode, Label: "Inline code", Icon: "<>"},
	{Action: ActionAlignLeft, Label: "Align left", Icon: "⇤"},
	{Action: ActionAlignCenter, Label: "Align center", Icon: "↔"},
	{Action: ActionAlignRight, Label: "Align right", Icon: "⇥"},
	{Action: ActionAlignJustify, Label: "Justify", Icon: "☰"},
	{Action: ActionBulletList, Label: "Bullet list", Icon: "•"},
	{Action: ActionNumberList, Label: "Numbered list", Icon: "1."},
	{Action: ActionCodeBlock, Label: "Code block", Icon: "{}"},
	{Action: ActionRule, Label: "Horizontal rule", Icon: "―"},
	{
		Action: ActionTable, Label: "Table", Icon: "⊞",
		Fields: []Field{
			{Name: "rows", Label: "Rows", Required: true, Default: "2"},
			{Name: "cols", Label: "Columns", Required: true, Default: "2"},
		},
	},
	{
		Action: ActionImage, Label: "Image", Icon: "🖼",
		Fields: []Field{
			{Name: "src", Label: "Image URL", Required: true},
			{Name: "alt", Label: "Alt text", Required: false},
			{Name: "caption", Label: "Caption", Required: false},
		},
	},
	{
		Action: ActionLink, Label: "Link", Icon: "🔗",
		Fields: []Field{
			{Name: "href", Label: "URL", Required: true},
			{Name: "text", Label: "Link text", Required: false},
			{Name: "newtab", Label: "Open in new tab (y/n)", Required: false, Default: "y"},
		},
	},
	{
		Action: ActionTextColor, Label: "Text color", Icon: "A",
		Fields: []Field{
			{Name: "color", Label: "Color", Required: true, Default: "#e11d48"},
		},
	},
	{
		Action: ActionHighlight, Label: "Highlight", Icon: "▆",
		Fields: []Field{
			{Name: "color", Label: "Color", Required: true, Default: "#fde047"},
		},
	},
}

// Lookup returns the catalog item for an action.
func Lookup(action Action) (Item, bool) {
	for _, item := range Items {
		if item.Action == action {
			return item, true
		}
	}
	return Item{}, false
}

// Ready reports whether every required field has a non-empty value. This is
// the UI-level gate that keeps the insert affordance disabled; the engine
// itself never rejects input.
func (it Item) Ready(values map[string]string) bool {
	for _, f := range it.Fields {
		if f.Required && values[f.Name] == "" {
			return false
		}
	}
	return true
}

// Build resolves an item plus its collected field values into the insertion
// request the engine consumes. Field values are treated as opaque strings;
// nothing is validated beyond required-field presence (checked via Ready).
func (it Item) Build(values map[string]string) editor.Request {
	wrap := func(p markup.WrapPair) editor.Request {
		return editor.Wrap(p.Before, p.After)
	}

	switch it.Action {
	case ActionBold:
		return wrap(markup.Bold)
	case ActionItalic:
		return wrap(markup.Italic)
	case ActionUnderline:
		return wrap(markup.Underline)
	case ActionStrikethrough:
		return wrap(markup.Strikethrough)
	case ActionSuperscript:
		return wrap(markup.Superscript)
	case ActionSubscript:
		return wrap(markup.Subscript)
	case ActionHeading1, ActionHeading2, ActionHeading3, ActionHeading4, ActionHeading5, ActionHeading6:
		return wrap(markup.Heading(int(it.Action-ActionHeading1) + 1))
	case ActionQuote:
		return wrap(markup.Blockquote)
	case ActionInlineCode:
		return wrap(markup.InlineCode)
	case ActionAlignLeft:
		return wrap(markup.Align(markup.AlignLeft))
	case ActionAlignCenter:
		return wrap(markup.Align(markup.AlignCenter))
	case ActionAlignRight:
		return wrap(markup.Align(markup.AlignRight))
	case ActionAlignJustify:
		return wrap(markup.Align(markup.AlignJustify))
	case ActionBulletList:
		return editor.InsertAt(markup.UnorderedList())
	case ActionNumberList:
		return editor.InsertAt(markup.OrderedList())
	case ActionCodeBlock:
		return editor.InsertAt(markup.CodeBlock())
	case ActionRule:
		return editor.InsertAt(markup.HorizontalRule())
	case ActionTable:
		rows := atoiOr(values["rows"], 2)
		cols := atoiOr(values["cols"], 2)
		return editor.InsertAt(markup.Table(rows, cols))
	case ActionImage:
		return editor.InsertAt(markup.Figure(values["src"], values["alt"], values["caption"]))
	case ActionLink:
		newTab := values["newtab"] == "" || values["newtab"] == "y" || values["newtab"] == "yes"
		return editor.InsertAt(markup.Anchor(values["href"], values["text"], newTab))
	case ActionTextColor:
		return wrap(markup.ColorSpan(values["color"]))
	case ActionHighlight:
		return wrap(markup.Highlight(values["color"]))
	default:
		return editor.InsertAt("")
	}
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
