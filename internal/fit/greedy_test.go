package fit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finch-reader/finch/internal/fit"
	"github.com/finch-reader/finch/pkg/config"
	"github.com/finch-reader/finch/pkg/font"
	"github.com/finch-reader/finch/pkg/layout"
)

// newFixedFont registers a uniform font: every printable glyph advances
// 10px and the space 10px, so words measure 10px per character.
func newFixedFont(t *testing.T) *font.Registry {
	t.Helper()

	glyphs := make([]font.Glyph, '~'-' '+1)
	for i := range glyphs {
		glyphs[i] = font.Glyph{Width: 10, Height: 10, Top: 10, AdvanceX: 10}
	}
	f, err := font.New(font.Params{
		ID:         1,
		LineHeight: 10,
		Intervals:  []font.Interval{{First: ' ', Last: '~', Offset: 0}},
		Glyphs:     glyphs,
	})
	require.NoError(t, err)

	reg := font.NewRegistry()
	require.NoError(t, reg.Register(f))
	return reg
}

func extract(t *testing.T, style layout.BlockStyle, width int, words ...string) []layout.Line {
	t.Helper()

	fonts := newFixedFont(t)
	cfg := config.Default()
	block := fit.NewFactory(fonts, cfg)(style)
	for _, w := range words {
		block.AddWord(w, 0, false)
	}

	var lines []layout.Line
	block.ExtractLines(1, width, func(line layout.Line) {
		lines = append(lines, line)
	})
	return lines
}

func TestBlock_GreedyWrap(t *testing.T) {
	// "aa"=20, "bbb"=30, "c"=10 with 10px spaces into a 60px measure:
	// aa+bbb=60 fits, c wraps.
	lines := extract(t, layout.BlockStyle{}, 60, "aa", "bbb", "c")
	require.Len(t, lines, 2)
	assert.Equal(t, "aa bbb", lines[0].Text())
	assert.Equal(t, "c", lines[1].Text())
}

func TestBlock_OversizedWordOverflows(t *testing.T) {
	lines := extract(t, layout.BlockStyle{}, 50, "abcdefghij")
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Words, 1)
	assert.Equal(t, int16(0), lines[0].Words[0].X)
}

func TestBlock_OneShotExtraction(t *testing.T) {
	fonts := newFixedFont(t)
	block := fit.NewFactory(fonts, config.Default())(layout.BlockStyle{})
	block.AddWord("word", 0, false)

	count := 0
	block.ExtractLines(1, 100, func(layout.Line) { count++ })
	block.ExtractLines(1, 100, func(layout.Line) { count++ })
	assert.Equal(t, 1, count, "a spent block produces nothing")
}

func TestBlock_Alignment(t *testing.T) {
	t.Run("center splits the slack", func(t *testing.T) {
		style := layout.BlockStyle{Alignment: config.AlignCenter}
		lines := extract(t, style, 100, "abcd")
		require.Len(t, lines, 1)
		assert.Equal(t, int16(30), lines[0].Words[0].X)
	})

	t.Run("right consumes the slack", func(t *testing.T) {
		style := layout.BlockStyle{Alignment: config.AlignRight}
		lines := extract(t, style, 100, "abcd")
		require.Len(t, lines, 1)
		assert.Equal(t, int16(60), lines[0].Words[0].X)
	})

	t.Run("justify pads gaps on full lines only", func(t *testing.T) {
		// "aaa bbb ccc" naturally measures 110 of 120: 10px slack over
		// two gaps goes 5+5.
		style := layout.BlockStyle{Alignment: config.AlignJustify}
		lines := extract(t, style, 120, "aaa", "bbb", "ccc", "last")
		require.Len(t, lines, 2)

		full := lines[0].Words
		require.Len(t, full, 3)
		assert.Equal(t, int16(0), full[0].X)
		assert.Equal(t, int16(45), full[1].X)
		assert.Equal(t, int16(90), full[2].X)

		// The last line keeps natural spacing.
		assert.Equal(t, int16(0), lines[1].Words[0].X)
	})

	t.Run("justify distributes remainder to leading gaps", func(t *testing.T) {
		// Slack 11 over two gaps: first gap gets 6, second 5.
		style := layout.BlockStyle{Alignment: config.AlignJustify}
		lines := extract(t, style, 121, "aaa", "bbb", "ccc", "last")
		require.Len(t, lines, 2)

		full := lines[0].Words
		assert.Equal(t, int16(0), full[0].X)
		assert.Equal(t, int16(46), full[1].X)
		assert.Equal(t, int16(91), full[2].X)
	})
}

func TestBlock_Indents(t *testing.T) {
	t.Run("text indent offsets the first line only", func(t *testing.T) {
		style := layout.BlockStyle{TextIndent: 20, IndentSet: true}
		lines := extract(t, style, 60, "aaa", "bbb")
		require.Len(t, lines, 2)
		assert.Equal(t, int16(20), lines[0].Words[0].X)
		assert.Equal(t, int16(0), lines[1].Words[0].X)
	})

	t.Run("hanging indent offsets continuation lines", func(t *testing.T) {
		// Hanging indent is measured from the block's left margin.
		style := layout.BlockStyle{MarginLeft: 15, HangingIndent: 35}
		lines := extract(t, style, 60, "aaa", "bbb")
		require.Len(t, lines, 2)
		assert.Equal(t, int16(0), lines[0].Words[0].X)
		assert.Equal(t, int16(20), lines[1].Words[0].X)
	})
}

func TestBlock_LinkWordsGetFlags(t *testing.T) {
	fonts := newFixedFont(t)
	block := fit.NewFactory(fonts, config.Default())(layout.BlockStyle{})
	block.AddWord("plain", 0, false)
	block.AddWord("linked", 0, true)
	block.AddWord("bold", layout.FlagBold, false)

	var words []layout.Word
	block.ExtractLines(1, 1000, func(line layout.Line) {
		words = append(words, line.Words...)
	})
	require.Len(t, words, 3)
	assert.Equal(t, layout.StyleFlags(0), words[0].Flags)
	assert.Equal(t, layout.FlagLink|layout.FlagItalic, words[1].Flags)
	assert.Equal(t, layout.FlagBold, words[2].Flags)
}
