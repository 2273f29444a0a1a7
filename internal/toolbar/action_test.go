package toolbar

import (
	"testing"

	"github.com/bethropolis/quill/internal/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	item, ok := Lookup(ActionBold)
	require.True(t, ok)
	assert.Equal(t, "Bold", item.Label)

	_, ok = Lookup(ActionUnknown)
	assert.False(t, ok)
}

func TestEveryItemBuildsARequest(t *testing.T) {
	for _, item := range Items {
		t.Run(item.Label, func(t *testing.T) {
			values := map[string]string{}
			for _, f := range item.Fields {
				if f.Default != "" {
					values[f.Name] = f.Default
				} else {
					values[f.Name] = "x"
				}
			}
			require.True(t, item.Ready(values))

			req := item.Build(values)
			switch req.Kind {
			case editor.RequestWrap:
				assert.NotEmpty(t, req.Before)
				assert.NotEmpty(t, req.After)
			case editor.RequestInsertAt:
				assert.NotEmpty(t, req.Fragment)
			default:
				t.Fatalf("unexpected request kind %v", req.Kind)
			}
		})
	}
}

func TestReadyGatesRequiredFields(t *testing.T) {
	item, ok := Lookup(ActionLink)
	require.True(t, ok)

	assert.False(t, item.Ready(map[string]string{}))
	assert.False(t, item.Ready(map[string]string{"text": "Example"}))
	assert.True(t, item.Ready(map[string]string{"href": "https://example.com"}))
}

func TestBuildWraps(t *testing.T) {
	item, _ := Lookup(ActionBold)
	req := item.Build(nil)
	assert.Equal(t, editor.Wrap("<strong>", "</strong>"), req)

	item, _ = Lookup(ActionHeading3)
	req = item.Build(nil)
	assert.Equal(t, editor.Wrap("<h3>", "</h3>"), req)

	item, _ = Lookup(ActionAlignCenter)
	req = item.Build(nil)
	assert.Equal(t, `<div style="text-align: center;">`, req.Before)
}

func TestBuildTable(t *testing.T) {
	item, _ := Lookup(ActionTable)

	req := item.Build(map[string]string{"rows": "3", "cols": "1"})
	require.Equal(t, editor.RequestInsertAt, req.Kind)
	assert.Contains(t, req.Fragment, "<td>Cell 3,1</td>")

	// Garbage dimensions fall back to the 2x2 default.
	req = item.Build(map[string]string{"rows": "x", "cols": ""})
	assert.Contains(t, req.Fragment, "<td>Cell 2,2</td>")
}

func TestBuildLink(t *testing.T) {
	item, _ := Lookup(ActionLink)

	req := item.Build(map[string]string{"href": "https://example.com", "text": "Example", "newtab": "y"})
	assert.Equal(t, `<a href="https://example.com" target="_blank" rel="noopener noreferrer">Example</a>`, req.Fragment)

	req = item.Build(map[string]string{"href": "https://example.com", "newtab": "n"})
	assert.Equal(t, `<a href="https://example.com">https://example.com</a>`, req.Fragment)
}

func TestBuildImage(t *testing.T) {
	item, _ := Lookup(ActionImage)

	req := item.Build(map[string]string{"src": "cat.png", "alt": "a cat"})
	assert.Contains(t, req.Fragment, `<img src="cat.png" alt="a cat">`)
	assert.NotContains(t, req.Fragment, "figcaption")
}

func TestBuildColorWraps(t *testing.T) {
	item, _ := Lookup(ActionTextColor)
	req := item.Build(map[string]string{"color": "#ff0000"})
	assert.Equal(t, `<span style="color: #ff0000;">`, req.Before)

	item, _ = Lookup(ActionHighlight)
	req = item.Build(map[string]string{"color": "#fde047"})
	assert.Equal(t, `<mark style="background-color: #fde047;">`, req.Before)
}
