package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	r := &recorder{}
	width := r.MeasureText("the quick", 1, 0)

	lines := Wrap(r, "the quick brown fox", width, 1, 0)
	assert.Equal(t, []string{"the quick", "brown fox"}, lines)
}

func TestWrapIsIdempotent(t *testing.T) {
	r := &recorder{}
	width := r.MeasureText("jumps over the", 1, 0)
	text := "the quick brown fox jumps over the lazy dog"

	lines := Wrap(r, text, width, 1, 0)
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, []string{line}, Wrap(r, line, width, 1, 0))
	}
	assert.Equal(t, lines, Wrap(r, text, width, 1, 0))
}

func TestWrapLongWordStaysWhole(t *testing.T) {
	r := &recorder{}
	width := r.MeasureText("tiny", 1, 0)

	lines := Wrap(r, "a supercalifragilistic word", width, 1, 0)
	assert.Equal(t, []string{"a", "supercalifragilistic", "word"}, lines)
}

func TestWrapCollapsesWhitespace(t *testing.T) {
	r := &recorder{}

	assert.Nil(t, Wrap(r, "   ", 1, 1, 0))
	assert.Equal(t, []string{"a b"}, Wrap(r, "  a \t b \n", 1, 1, 0))
}

func TestWrapRespectsScale(t *testing.T) {
	r := &recorder{}
	width := r.MeasureText("the quick", 1, 0)

	assert.Len(t, Wrap(r, "the quick", width, 1, 0), 1)
	assert.Len(t, Wrap(r, "the quick", width, 2, 0), 2)
}

func TestFitScale(t *testing.T) {
	r := &recorder{}
	text := "a long menu title"
	maxWidth := r.MeasureText(text, 0.8, 0)

	t.Run("fits at full scale", func(t *testing.T) {
		assert.Equal(t, 1.0, FitScale(r, text, maxWidth*2, 1, 0.5, 0))
	})

	t.Run("shrinks to fit on one line", func(t *testing.T) {
		scale := FitScale(r, text, maxWidth, 1, 0.5, 0)
		assert.InDelta(t, 0.8, scale, 1e-3)
		assert.LessOrEqual(t, r.MeasureText(text, scale, 0), maxWidth)
		assert.Len(t, Wrap(r, text, maxWidth, scale, 0), 1)
	})

	t.Run("stops at the minimum", func(t *testing.T) {
		assert.Equal(t, 0.5, FitScale(r, text, maxWidth/4, 1, 0.5, 0))
	})
}
