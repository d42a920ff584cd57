package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finch-reader/finch/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, float32(1.0), cfg.LineCompression)
	assert.True(t, cfg.KerningEnabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Render)
		valid  bool
	}{
		{name: "default is valid", mutate: func(*config.Render) {}, valid: true},
		{name: "zero width", mutate: func(c *config.Render) { c.ViewportWidth = 0 }},
		{name: "zero height", mutate: func(c *config.Render) { c.ViewportHeight = 0 }},
		{name: "zero compression", mutate: func(c *config.Render) { c.LineCompression = 0 }},
		{name: "negative compression", mutate: func(c *config.Render) { c.LineCompression = -1 }},
		{name: "excessive compression", mutate: func(c *config.Render) { c.LineCompression = 3.5 }},
		{name: "alignment out of range", mutate: func(c *config.Render) { c.Alignment = config.Alignment(42) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, config.ErrInvalid)
			}
		})
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in   string
		want config.Alignment
	}{
		{in: "none", want: config.AlignNone},
		{in: "", want: config.AlignNone},
		{in: "left", want: config.AlignLeft},
		{in: "center", want: config.AlignCenter},
		{in: "right", want: config.AlignRight},
		{in: "justify", want: config.AlignJustify},
	}

	for _, tt := range tests {
		got, err := config.ParseAlignment(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		if tt.in != "" {
			assert.Equal(t, tt.in, got.String())
		}
	}

	_, err := config.ParseAlignment("diagonal")
	require.ErrorIs(t, err, config.ErrInvalid)
}
