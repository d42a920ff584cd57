package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlRender mirrors Render with alignment as its YAML name instead of the
// numeric enum value.
type yamlRender struct {
	FontID                int     `yaml:"font_id"`
	LineCompression       float32 `yaml:"line_compression"`
	ExtraParagraphSpacing bool    `yaml:"extra_paragraph_spacing"`
	Alignment             string  `yaml:"alignment"`
	ViewportWidth         uint16  `yaml:"viewport_width"`
	ViewportHeight        uint16  `yaml:"viewport_height"`
	HyphenationEnabled    bool    `yaml:"hyphenation"`
	KerningEnabled        bool    `yaml:"kerning"`
}

// ToYAML serializes the configuration to YAML.
func (r Render) ToYAML() ([]byte, error) {
	out := yamlRender{
		FontID:                r.FontID,
		LineCompression:       r.LineCompression,
		ExtraParagraphSpacing: r.ExtraParagraphSpacing,
		Alignment:             r.Alignment.String(),
		ViewportWidth:         r.ViewportWidth,
		ViewportHeight:        r.ViewportHeight,
		HyphenationEnabled:    r.HyphenationEnabled,
		KerningEnabled:        r.KerningEnabled,
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(out); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes. Fields absent from the
// document keep their Default() values.
func FromYAML(data []byte) (Render, error) {
	cfg := Default()
	in := yamlRender{
		FontID:                cfg.FontID,
		LineCompression:       cfg.LineCompression,
		ExtraParagraphSpacing: cfg.ExtraParagraphSpacing,
		Alignment:             cfg.Alignment.String(),
		ViewportWidth:         cfg.ViewportWidth,
		ViewportHeight:        cfg.ViewportHeight,
		HyphenationEnabled:    cfg.HyphenationEnabled,
		KerningEnabled:        cfg.KerningEnabled,
	}

	if err := yaml.Unmarshal(data, &in); err != nil {
		return Render{}, fmt.Errorf("parse yaml: %w", err)
	}

	alignment, err := ParseAlignment(in.Alignment)
	if err != nil {
		return Render{}, err
	}

	cfg = Render{
		FontID:                in.FontID,
		LineCompression:       in.LineCompression,
		ExtraParagraphSpacing: in.ExtraParagraphSpacing,
		Alignment:             alignment,
		ViewportWidth:         in.ViewportWidth,
		ViewportHeight:        in.ViewportHeight,
		HyphenationEnabled:    in.HyphenationEnabled,
		KerningEnabled:        in.KerningEnabled,
	}

	if err := cfg.Validate(); err != nil {
		return Render{}, err
	}
	return cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (Render, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Render{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return FromYAML(data)
}
