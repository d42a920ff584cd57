package font

import "unicode/utf8"

// Bounds is the bounding box of a measured text run, in the same
// coordinate space as the start position passed to TextBounds.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() int { return b.MaxX - b.MinX }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() int { return b.MaxY - b.MinY }

// TextBounds measures a string starting at (startX, startY) on the
// baseline. With kerning enabled it greedily folds codepoint pairs into
// ligatures (chaining: a substituted ligature may itself ligate with the
// following codepoint) and applies pair kerning between consecutive
// glyphs. Missing glyphs degrade to the replacement glyph; if that is
// also missing the codepoint is skipped and the kerning context resets,
// so no pair adjustment is applied across a dropped character.
func (f *Font) TextBounds(s string, startX, startY int, kerningEnabled bool) Bounds {
	b := Bounds{MinX: startX, MinY: startY, MaxX: startX, MaxY: startY}

	cursorX := startX
	var prev rune

	for i := 0; i < len(s); {
		cp, size := utf8.DecodeRuneInString(s[i:])
		i += size

		if kerningEnabled {
			for i < len(s) {
				next, nextSize := utf8.DecodeRuneInString(s[i:])
				lig := f.Ligature(cp, next)
				if lig == 0 {
					break
				}
				cp = lig
				i += nextSize
			}
		}

		glyph, ok := f.Glyph(cp)
		if !ok {
			glyph, ok = f.Glyph(f.replacement)
		}
		if !ok {
			prev = 0
			continue
		}

		if kerningEnabled && prev != 0 {
			cursorX += int(f.Kerning(prev, cp))
		}

		b.MinX = min(b.MinX, cursorX+int(glyph.Left))
		b.MaxX = max(b.MaxX, cursorX+int(glyph.Left)+int(glyph.Width))
		b.MinY = min(b.MinY, startY+int(glyph.Top)-int(glyph.Height))
		b.MaxY = max(b.MaxY, startY+int(glyph.Top))

		cursorX += int(glyph.AdvanceX)
		prev = cp
	}

	return b
}

// TextDimensions returns the width and height of a string measured from
// the origin.
func (f *Font) TextDimensions(s string, kerningEnabled bool) (w, h int) {
	b := f.TextBounds(s, 0, 0, kerningEnabled)
	return b.Width(), b.Height()
}

// TextWidth returns the width of a string in pixels.
func (f *Font) TextWidth(s string, kerningEnabled bool) int {
	w, _ := f.TextDimensions(s, kerningEnabled)
	return w
}

// HasPrintableChars reports whether the string produces any visible ink.
func (f *Font) HasPrintableChars(s string, kerningEnabled bool) bool {
	w, h := f.TextDimensions(s, kerningEnabled)
	return w > 0 || h > 0
}
