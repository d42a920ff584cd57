package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finch-reader/finch/pkg/config"
	"github.com/finch-reader/finch/pkg/font"
)

// Workstation builds have no device firmware to load glyph tables from,
// so the CLI registers a synthetic fixed-metric face. Pagination
// geometry is what the CLI inspects; actual bitmaps never render here.
const (
	builtinFontID     = 1
	builtinLineHeight = 18
	builtinAdvance    = 9
)

// builtinRegistry returns a registry holding the synthetic CLI font.
func builtinRegistry() (*font.Registry, error) {
	const first, last = ' ', '~'

	glyphs := make([]font.Glyph, last-first+1)
	for i := range glyphs {
		glyphs[i] = font.Glyph{
			Width:    builtinAdvance,
			Height:   builtinLineHeight,
			AdvanceX: builtinAdvance,
			BitmapID: uint32(i),
		}
	}

	f, err := font.New(font.Params{
		ID:          builtinFontID,
		LineHeight:  builtinLineHeight,
		Replacement: '?',
		Intervals:   []font.Interval{{First: first, Last: last, Offset: 0}},
		Glyphs:      glyphs,
	})
	if err != nil {
		return nil, fmt.Errorf("build cli font: %w", err)
	}

	reg := font.NewRegistry()
	if err := reg.Register(f); err != nil {
		return nil, err
	}
	return reg, nil
}

// loadConfig resolves the render configuration: the --config file when
// given, defaults otherwise. The font id is pinned to the CLI font.
func loadConfig(cmd *cobra.Command) (config.Render, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Render{}, fmt.Errorf("get config flag: %w", err)
	}

	cfg := config.Default()
	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return config.Render{}, err
		}
	} else if data, err := os.ReadFile(defaultConfigName); err == nil {
		cfg, err = config.FromYAML(data)
		if err != nil {
			return config.Render{}, fmt.Errorf("parse %s: %w", defaultConfigName, err)
		}
	}

	cfg.FontID = builtinFontID
	return cfg, nil
}
