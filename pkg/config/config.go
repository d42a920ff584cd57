// Package config defines the rendering configuration for finch.
// These types are pure data structures; every field participates in page
// cache validation, so two configs that compare equal must always produce
// byte-identical caches.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Alignment is the horizontal alignment applied to paragraph text.
type Alignment uint8

const (
	// AlignNone means "no preference": paragraphs fall back to justify,
	// headers and list items keep their own alignment.
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

// String returns the YAML/CLI name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "unknown"
	}
}

// ParseAlignment converts a YAML/CLI name into an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "none", "":
		return AlignNone, nil
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	case "justify":
		return AlignJustify, nil
	default:
		return AlignNone, fmt.Errorf("%w: unknown alignment %q", ErrInvalid, s)
	}
}

// IsValid returns true if the alignment is one of the known values.
func (a Alignment) IsValid() bool {
	return a <= AlignJustify
}

// Render holds every parameter that affects pagination output.
// A page cache built under one Render is only reusable under an equal one.
type Render struct {
	// FontID selects the reader font from the font registry.
	FontID int `yaml:"font_id"`

	// LineCompression scales the vertical advance between lines.
	// 1.0 is the font's natural line height.
	LineCompression float32 `yaml:"line_compression"`

	// ExtraParagraphSpacing adds half a line height after each paragraph.
	ExtraParagraphSpacing bool `yaml:"extra_paragraph_spacing"`

	// Alignment is the user's paragraph alignment preference.
	Alignment Alignment `yaml:"alignment"`

	// ViewportWidth and ViewportHeight are the usable text area in pixels.
	ViewportWidth  uint16 `yaml:"viewport_width"`
	ViewportHeight uint16 `yaml:"viewport_height"`

	// HyphenationEnabled asks the line fitter to hyphenate overlong words.
	HyphenationEnabled bool `yaml:"hyphenation"`

	// KerningEnabled applies kerning and ligature substitution when
	// measuring text. Not part of the cache identity: it only affects
	// measurement inside the line fitter, which re-runs on rebuild anyway.
	KerningEnabled bool `yaml:"kerning"`
}

// Default returns the render configuration for a stock device profile.
func Default() Render {
	return Render{
		FontID:          1,
		LineCompression: 1.0,
		Alignment:       AlignNone,
		ViewportWidth:   480,
		ViewportHeight:  760,
		KerningEnabled:  true,
	}
}

// Validate checks the configuration for values the engine cannot work with.
func (r Render) Validate() error {
	if r.ViewportWidth == 0 || r.ViewportHeight == 0 {
		return fmt.Errorf("%w: viewport must be non-zero, got %dx%d",
			ErrInvalid, r.ViewportWidth, r.ViewportHeight)
	}
	if r.LineCompression <= 0 || r.LineCompression > 3 {
		return fmt.Errorf("%w: line_compression must be in (0, 3], got %g",
			ErrInvalid, r.LineCompression)
	}
	if !r.Alignment.IsValid() {
		return fmt.Errorf("%w: alignment value %d out of range", ErrInvalid, r.Alignment)
	}
	return nil
}
