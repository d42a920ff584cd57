// Package layout turns a markdown token stream into a sequence of
// fixed-size display pages. It resolves cascading block styles,
// accumulates styled words into logical blocks, hands blocks to a line
// fitter, and emits completed pages as the viewport fills.
package layout

import "github.com/finch-reader/finch/pkg/config"

// StyleFlags is the per-word emphasis bit set.
type StyleFlags uint8

const (
	FlagBold StyleFlags = 1 << iota
	FlagItalic
	FlagLink
)

// BlockStyle holds the block-level spacing and alignment properties of a
// logical document block. Values are pixels.
type BlockStyle struct {
	Alignment config.Alignment

	MarginTop    int16
	MarginBottom int16
	MarginLeft   int16
	MarginRight  int16

	// Padding is treated the same as margin for rendering.
	PaddingTop    int16
	PaddingBottom int16
	PaddingLeft   int16
	PaddingRight  int16

	TextIndent    int16
	HangingIndent int16 // x-offset applied to all lines after the first

	// Explicit-set flags drive the cascade: a child's alignment or
	// indent wins over the parent's only when marked as set.
	AlignSet  bool
	IndentSet bool
}

// LeftInset returns the combined left margin and padding.
func (s BlockStyle) LeftInset() int16 { return s.MarginLeft + s.PaddingLeft }

// RightInset returns the combined right margin and padding.
func (s BlockStyle) RightInset() int16 { return s.MarginRight + s.PaddingRight }

// TotalHorizontalInset returns the combined horizontal insets.
func (s BlockStyle) TotalHorizontalInset() int16 { return s.LeftInset() + s.RightInset() }

// Combine applies a child style on top of this parent style. Margins and
// paddings sum; hanging indent prefers the child's when non-zero;
// alignment and text indent follow the child only when explicitly set.
func (s BlockStyle) Combine(child BlockStyle) BlockStyle {
	combined := BlockStyle{
		MarginTop:    s.MarginTop + child.MarginTop,
		MarginBottom: s.MarginBottom + child.MarginBottom,
		MarginLeft:   s.MarginLeft + child.MarginLeft,
		MarginRight:  s.MarginRight + child.MarginRight,

		PaddingTop:    s.PaddingTop + child.PaddingTop,
		PaddingBottom: s.PaddingBottom + child.PaddingBottom,
		PaddingLeft:   s.PaddingLeft + child.PaddingLeft,
		PaddingRight:  s.PaddingRight + child.PaddingRight,
	}

	if child.HangingIndent != 0 {
		combined.HangingIndent = child.HangingIndent
	} else {
		combined.HangingIndent = s.HangingIndent
	}

	if child.IndentSet {
		combined.TextIndent = child.TextIndent
		combined.IndentSet = true
	} else {
		combined.TextIndent = s.TextIndent
		combined.IndentSet = s.IndentSet
	}

	if child.AlignSet {
		combined.Alignment = child.Alignment
		combined.AlignSet = true
	} else {
		combined.Alignment = s.Alignment
		combined.AlignSet = s.AlignSet
	}

	return combined
}
