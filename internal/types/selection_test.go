package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaret(t *testing.T) {
	sel := Caret(5)
	assert.True(t, sel.IsCaret())
	assert.Equal(t, 0, sel.Len())
	assert.Equal(t, 5, sel.Start)
}

func TestNormalized(t *testing.T) {
	assert.Equal(t, Selection{Start: 2, End: 7}, Selection{Start: 7, End: 2}.Normalized())
	assert.Equal(t, Selection{Start: 2, End: 7}, Selection{Start: 2, End: 7}.Normalized())
}

func TestLen(t *testing.T) {
	assert.Equal(t, 5, Selection{Start: 2, End: 7}.Len())
	assert.Equal(t, 0, Caret(3).Len())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, Selection{Start: 0, End: 3}, Selection{Start: -2, End: 10}.Clamp(3))
	assert.Equal(t, Selection{Start: 1, End: 2}, Selection{Start: 1, End: 2}.Clamp(3))
	assert.Equal(t, Selection{Start: 0, End: 0}, Selection{Start: 0, End: 0}.Clamp(0))
}
