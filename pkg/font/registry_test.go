package font_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finch-reader/finch/pkg/font"
)

func TestRegistry(t *testing.T) {
	t.Run("resolves registered font", func(t *testing.T) {
		reg := font.NewRegistry()
		require.NoError(t, reg.Register(newTestFont(t)))

		f, err := reg.Font(7)
		require.NoError(t, err)
		assert.Equal(t, 7, f.ID())
		assert.Equal(t, 14, reg.LineHeight(7))
		assert.Equal(t, 4, reg.SpaceWidth(7))
		assert.Equal(t, 20, reg.TextWidth(7, "AB", false))
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		reg := font.NewRegistry()
		require.NoError(t, reg.Register(newTestFont(t)))
		require.Error(t, reg.Register(newTestFont(t)))
	})

	t.Run("unknown id errors on lookup", func(t *testing.T) {
		reg := font.NewRegistry()
		_, err := reg.Font(99)
		require.ErrorIs(t, err, font.ErrUnknownFont)
	})

	t.Run("unknown id degrades metrics to zero", func(t *testing.T) {
		reg := font.NewRegistry()
		assert.Equal(t, 0, reg.LineHeight(99))
		assert.Equal(t, 0, reg.SpaceWidth(99))
		assert.Equal(t, 0, reg.TextWidth(99, "text", true))
	})
}
