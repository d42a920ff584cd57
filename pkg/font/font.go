// Package font implements the glyph catalog for bitmap reader fonts:
// codepoint-to-glyph lookup over a sorted interval table, and kerning and
// ligature resolution over sorted codepoint-pair tables. All lookups are
// O(log n) binary searches over tables that are immutable after load, so a
// Font is safe for concurrent use.
package font

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for table validation via errors.Is.
var (
	// ErrIntervalOrder means the interval table is not sorted ascending
	// by first codepoint or contains overlapping ranges.
	ErrIntervalOrder = errors.New("font: interval table unsorted or overlapping")

	// ErrPairOrder means a kerning or ligature table is not sorted
	// ascending by packed key.
	ErrPairOrder = errors.New("font: pair table unsorted")

	// ErrGlyphRange means an interval references glyph storage that does
	// not exist.
	ErrGlyphRange = errors.New("font: interval exceeds glyph storage")
)

// Glyph holds the metrics and bitmap reference for one rendered codepoint.
// Coordinates are relative to the glyph origin on the baseline.
type Glyph struct {
	Left     int16  // bearing from origin to left edge of the bitmap
	Top      int16  // bearing from baseline up to top edge of the bitmap
	Width    uint16 // bitmap width in pixels
	Height   uint16 // bitmap height in pixels
	AdvanceX int16  // horizontal cursor advance
	BitmapID uint32 // stable reference into the font's bitmap store
}

// Interval maps an inclusive codepoint range [First, Last] onto a
// contiguous run of glyphs starting at Offset.
type Interval struct {
	First  rune
	Last   rune
	Offset uint32
}

// KernPair is a horizontal adjustment between two adjacent codepoints.
// Key packs the pair as (left<<16)|right; both codepoints must be <= 0xFFFF.
type KernPair struct {
	Key    uint32
	Adjust int8
}

// LigaturePair substitutes a single codepoint for two adjacent ones.
type LigaturePair struct {
	Key      uint32
	Ligature rune
}

// pairKey packs two codepoints into a single sortable key.
// Returns false when either codepoint does not fit in 16 bits.
func pairKey(left, right rune) (uint32, bool) {
	if left < 0 || left > 0xFFFF || right < 0 || right > 0xFFFF {
		return 0, false
	}
	return uint32(left)<<16 | uint32(right), true
}

// Font is an immutable glyph catalog for one font face.
type Font struct {
	id          int
	lineHeight  int
	spaceWidth  int
	replacement rune

	intervals []Interval
	glyphs    []Glyph
	kerning   []KernPair
	ligatures []LigaturePair
}

// Params describes the tables and scalar metrics of a font face.
// Slices are retained by the Font and must not be mutated afterwards.
type Params struct {
	ID          int
	LineHeight  int
	Replacement rune // codepoint substituted for missing glyphs, e.g. U+FFFD

	Intervals []Interval
	Glyphs    []Glyph
	Kerning   []KernPair
	Ligatures []LigaturePair
}

// New validates the table invariants and returns an immutable Font.
func New(p Params) (*Font, error) {
	for i, iv := range p.Intervals {
		if iv.Last < iv.First {
			return nil, fmt.Errorf("%w: interval %d is inverted", ErrIntervalOrder, i)
		}
		if i > 0 && iv.First <= p.Intervals[i-1].Last {
			return nil, fmt.Errorf("%w: interval %d starts at %#x", ErrIntervalOrder, i, iv.First)
		}
		end := uint64(iv.Offset) + uint64(iv.Last-iv.First) + 1
		if end > uint64(len(p.Glyphs)) {
			return nil, fmt.Errorf("%w: interval %d needs %d glyphs, have %d",
				ErrGlyphRange, i, end, len(p.Glyphs))
		}
	}
	for i := 1; i < len(p.Kerning); i++ {
		if p.Kerning[i].Key <= p.Kerning[i-1].Key {
			return nil, fmt.Errorf("%w: kerning entry %d", ErrPairOrder, i)
		}
	}
	for i := 1; i < len(p.Ligatures); i++ {
		if p.Ligatures[i].Key <= p.Ligatures[i-1].Key {
			return nil, fmt.Errorf("%w: ligature entry %d", ErrPairOrder, i)
		}
	}

	f := &Font{
		id:          p.ID,
		lineHeight:  p.LineHeight,
		replacement: p.Replacement,
		intervals:   p.Intervals,
		glyphs:      p.Glyphs,
		kerning:     p.Kerning,
		ligatures:   p.Ligatures,
	}
	if g, ok := f.Glyph(' '); ok {
		f.spaceWidth = int(g.AdvanceX)
	} else {
		// Fallback for fonts that omit the space glyph.
		f.spaceWidth = p.LineHeight / 3
	}
	return f, nil
}

// ID returns the stable font identifier.
func (f *Font) ID() int { return f.id }

// LineHeight returns the vertical advance between baselines in pixels.
func (f *Font) LineHeight() int { return f.lineHeight }

// SpaceWidth returns the advance of the space glyph.
func (f *Font) SpaceWidth() int { return f.spaceWidth }

// Glyph looks up the glyph for a codepoint. The second return value is
// false when the codepoint falls outside every interval; callers decide
// whether to fall back to the replacement glyph.
func (f *Font) Glyph(cp rune) (Glyph, bool) {
	n := len(f.intervals)
	i := sort.Search(n, func(i int) bool { return f.intervals[i].Last >= cp })
	if i == n || cp < f.intervals[i].First {
		return Glyph{}, false
	}
	iv := f.intervals[i]
	return f.glyphs[iv.Offset+uint32(cp-iv.First)], true
}

// Kerning returns the horizontal adjustment between two adjacent
// codepoints, or 0 when the pair is absent or either codepoint exceeds
// 16 bits. Absence is not an error.
func (f *Font) Kerning(left, right rune) int8 {
	key, ok := pairKey(left, right)
	if !ok {
		return 0
	}
	n := len(f.kerning)
	i := sort.Search(n, func(i int) bool { return f.kerning[i].Key >= key })
	if i == n || f.kerning[i].Key != key {
		return 0
	}
	return f.kerning[i].Adjust
}

// Ligature returns the substitute codepoint for two adjacent codepoints,
// or 0 when no ligature exists.
func (f *Font) Ligature(left, right rune) rune {
	key, ok := pairKey(left, right)
	if !ok {
		return 0
	}
	n := len(f.ligatures)
	i := sort.Search(n, func(i int) bool { return f.ligatures[i].Key >= key })
	if i == n || f.ligatures[i].Key != key {
		return 0
	}
	return f.ligatures[i].Ligature
}
