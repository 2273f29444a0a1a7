package editor

import (
	"testing"

	"github.com/bethropolis/quill/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestApplyWrap(t *testing.T) {
	tests := []struct {
		name       string
		buf        string
		sel        types.Selection
		before     string
		after      string
		want       string
		wantCursor int
	}{
		{
			name:       "wrap selected word",
			buf:        "hello world",
			sel:        types.Selection{Start: 6, End: 11},
			before:     "<strong>",
			after:      "</strong>",
			want:       "hello <strong>world</strong>",
			wantCursor: 19,
		},
		{
			name:       "caret inserts empty pair",
			buf:        "hello",
			sel:        types.Selection{Start: 2, End: 2},
			before:     "<em>",
			after:      "</em>",
			want:       "he<em></em>llo",
			wantCursor: 6,
		},
		{
			name:       "inverted selection is normalized",
			buf:        "hello world",
			sel:        types.Selection{Start: 11, End: 6},
			before:     "<em>",
			after:      "</em>",
			want:       "hello <em>world</em>",
			wantCursor: 15,
		},
		{
			name:       "selection clamped to buffer",
			buf:        "abc",
			sel:        types.Selection{Start: 1, End: 99},
			before:     "(",
			after:      ")",
			want:       "a(bc)",
			wantCursor: 4,
		},
		{
			name:       "empty pair leaves buffer unchanged",
			buf:        "abc",
			sel:        types.Selection{Start: 0, End: 3},
			before:     "",
			after:      "",
			want:       "abc",
			wantCursor: 3,
		},
		{
			name:       "offsets are rune based",
			buf:        "héllo wörld",
			sel:        types.Selection{Start: 6, End: 11},
			before:     "<u>",
			after:      "</u>",
			want:       "héllo <u>wörld</u>",
			wantCursor: 14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cursor := ApplyWrap(tt.buf, tt.sel, tt.before, tt.after)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCursor, cursor)
		})
	}
}

func TestApplyInsertAt(t *testing.T) {
	tests := []struct {
		name       string
		buf        string
		offset     int
		fragment   string
		want       string
		wantCursor int
	}{
		{"middle", "ab", 1, "X", "aXb", 2},
		{"start", "ab", 0, "X", "Xab", 1},
		{"end", "ab", 2, "X", "abX", 3},
		{"negative offset clamps to start", "ab", -5, "X", "Xab", 1},
		{"past end clamps to end", "ab", 99, "X", "abX", 3},
		{"empty fragment", "ab", 1, "", "ab", 1},
		{"into empty buffer", "", 0, "<hr>\n", "<hr>\n", 5},
		{"rune offsets", "日本語", 1, "X", "日X本語", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cursor := ApplyInsertAt(tt.buf, tt.offset, tt.fragment)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCursor, cursor)
		})
	}
}

func TestApplyDispatch(t *testing.T) {
	t.Run("wrap request", func(t *testing.T) {
		got, cursor := Apply("hello world", types.Selection{Start: 6, End: 11}, Wrap("<strong>", "</strong>"))
		assert.Equal(t, "hello <strong>world</strong>", got)
		assert.Equal(t, 19, cursor)
	})

	t.Run("insert replaces selection", func(t *testing.T) {
		got, cursor := Apply("hello world", types.Selection{Start: 6, End: 11}, InsertAt("<hr>\n"))
		assert.Equal(t, "hello <hr>\n", got)
		assert.Equal(t, 11, cursor)
	})

	t.Run("insert at caret", func(t *testing.T) {
		got, cursor := Apply("ab", types.Selection{Start: 1, End: 1}, InsertAt("X"))
		assert.Equal(t, "aXb", got)
		assert.Equal(t, 2, cursor)
	})
}
