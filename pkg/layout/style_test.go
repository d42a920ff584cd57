package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finch-reader/finch/pkg/config"
	"github.com/finch-reader/finch/pkg/layout"
)

func TestBlockStyle_Insets(t *testing.T) {
	s := layout.BlockStyle{
		MarginLeft:   15,
		PaddingLeft:  5,
		MarginRight:  3,
		PaddingRight: 2,
	}

	assert.Equal(t, int16(20), s.LeftInset())
	assert.Equal(t, int16(5), s.RightInset())
	assert.Equal(t, int16(25), s.TotalHorizontalInset())
}

func TestBlockStyle_Combine(t *testing.T) {
	t.Run("margins and paddings sum", func(t *testing.T) {
		parent := layout.BlockStyle{MarginLeft: 15, PaddingLeft: 5, MarginTop: 10}
		child := layout.BlockStyle{MarginLeft: 30, MarginBottom: 4}

		combined := parent.Combine(child)
		assert.Equal(t, int16(45), combined.MarginLeft)
		assert.Equal(t, int16(5), combined.PaddingLeft)
		assert.Equal(t, int16(10), combined.MarginTop)
		assert.Equal(t, int16(4), combined.MarginBottom)
	})

	t.Run("child alignment wins only when set", func(t *testing.T) {
		parent := layout.BlockStyle{Alignment: config.AlignJustify, AlignSet: true}

		unset := parent.Combine(layout.BlockStyle{Alignment: config.AlignRight})
		assert.Equal(t, config.AlignJustify, unset.Alignment)

		set := parent.Combine(layout.BlockStyle{Alignment: config.AlignRight, AlignSet: true})
		assert.Equal(t, config.AlignRight, set.Alignment)
	})

	t.Run("child text indent wins only when set", func(t *testing.T) {
		parent := layout.BlockStyle{TextIndent: 12, IndentSet: true}

		unset := parent.Combine(layout.BlockStyle{TextIndent: 99})
		assert.Equal(t, int16(12), unset.TextIndent)

		set := parent.Combine(layout.BlockStyle{TextIndent: 7, IndentSet: true})
		assert.Equal(t, int16(7), set.TextIndent)
	})

	t.Run("hanging indent prefers child when non-zero", func(t *testing.T) {
		parent := layout.BlockStyle{HangingIndent: 20}

		kept := parent.Combine(layout.BlockStyle{})
		assert.Equal(t, int16(20), kept.HangingIndent)

		replaced := parent.Combine(layout.BlockStyle{HangingIndent: 35})
		assert.Equal(t, int16(35), replaced.HangingIndent)
	})
}
