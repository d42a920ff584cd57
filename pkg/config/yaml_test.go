package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finch-reader/finch/pkg/config"
)

func TestYAML_RoundTrip(t *testing.T) {
	cfg := config.Render{
		FontID:                3,
		LineCompression:       0.9,
		ExtraParagraphSpacing: true,
		Alignment:             config.AlignCenter,
		ViewportWidth:         480,
		ViewportHeight:        760,
		HyphenationEnabled:    true,
		KerningEnabled:        true,
	}

	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "alignment: center")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestFromYAML(t *testing.T) {
	t.Run("absent fields keep defaults", func(t *testing.T) {
		parsed, err := config.FromYAML([]byte("alignment: right\n"))
		require.NoError(t, err)

		want := config.Default()
		want.Alignment = config.AlignRight
		assert.Equal(t, want, parsed)
	})

	t.Run("unknown alignment fails", func(t *testing.T) {
		_, err := config.FromYAML([]byte("alignment: diagonal\n"))
		require.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		_, err := config.FromYAML([]byte("viewport_width: 0\n"))
		require.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		_, err := config.FromYAML([]byte("{"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "finch.yaml")
		require.NoError(t, os.WriteFile(path, []byte("font_id: 2\n"), 0o644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.FontID)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
