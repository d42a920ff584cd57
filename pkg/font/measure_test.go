package font_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finch-reader/finch/pkg/font"
)

func TestTextBounds_Position(t *testing.T) {
	f := newTestFont(t)

	b := f.TextBounds("A", 5, 100, false)
	assert.Equal(t, 5, b.MinX)
	assert.Equal(t, 15, b.MaxX)
	assert.Equal(t, 100, b.MinY)
	assert.Equal(t, 110, b.MaxY)
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 10, b.Height())
}

func TestTextWidth(t *testing.T) {
	f := newTestFont(t)

	tests := []struct {
		name    string
		text    string
		kerning bool
		want    int
	}{
		{name: "plain run", text: "AB", kerning: false, want: 20},
		{name: "kerned pair", text: "AV", kerning: true, want: 18},
		{name: "kerning disabled", text: "AV", kerning: false, want: 20},
		{name: "simple ligature", text: "fi", kerning: true, want: 16},
		{name: "chained ligature", text: "ffi", kerning: true, want: 26},
		{name: "ligatures off without kerning", text: "ffi", kerning: false, want: 30},
		{name: "empty string", text: "", kerning: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.TextWidth(tt.text, tt.kerning))
		})
	}
}

func TestTextBounds_Replacement(t *testing.T) {
	t.Run("missing glyph uses replacement", func(t *testing.T) {
		f := newTestFont(t)
		assert.Equal(t, 10, f.TextWidth("€", true))
	})

	t.Run("missing replacement drops char and resets kerning", func(t *testing.T) {
		glyphs := make([]font.Glyph, '~'-' '+1)
		for i := range glyphs {
			glyphs[i] = font.Glyph{Width: 10, Height: 10, Top: 10, AdvanceX: 10}
		}
		f, err := font.New(font.Params{
			LineHeight: 14,
			Intervals:  []font.Interval{{First: ' ', Last: '~', Offset: 0}},
			Glyphs:     glyphs,
			Kerning:    []font.KernPair{{Key: pair('A', 'V'), Adjust: -2}},
		})
		require.NoError(t, err)

		assert.Equal(t, 18, f.TextWidth("AV", true))
		// The dropped codepoint breaks the A-V adjacency.
		assert.Equal(t, 20, f.TextWidth("A€V", true))
	})
}

func TestHasPrintableChars(t *testing.T) {
	f := newTestFont(t)

	assert.True(t, f.HasPrintableChars("A", true))
	assert.False(t, f.HasPrintableChars("", true))
}
