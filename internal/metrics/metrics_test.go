package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t  ", 0},
		{"surrounding whitespace", "  a  b ", 2},
		{"single word", "hello", 1},
		{"markup counts as words", "<p>hello world</p>", 2},
		{"newline separated", "one\ntwo\nthree", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.text))
		})
	}
}

func TestChars(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "abc", 3},
		{"combining accent is one cluster", "é", 1},
		{"emoji with modifier", "👍🏽", 1},
		{"cjk", "日本語", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Chars(tt.text))
		})
	}
}

func TestReadMinutes(t *testing.T) {
	assert.Equal(t, 0, ReadMinutes(0, 200))
	assert.Equal(t, 1, ReadMinutes(1, 200))
	assert.Equal(t, 1, ReadMinutes(200, 200))
	assert.Equal(t, 2, ReadMinutes(201, 200))
	assert.Equal(t, 3, ReadMinutes(401, 200))

	// Non-positive wpm falls back to the default rate.
	assert.Equal(t, 2, ReadMinutes(201, 0))
	assert.Equal(t, 2, ReadMinutes(201, -5))
}

func TestCompute(t *testing.T) {
	stats := Compute("one two three", 200)
	assert.Equal(t, Stats{Words: 3, Chars: 13, ReadMinutes: 1}, stats)

	assert.Equal(t, Stats{}, Compute("", 200))
}
