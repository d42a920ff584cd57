package pagecache

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/finch-reader/finch/pkg/layout"
)

// Page body encoding, little-endian:
//
//	u16 elementCount
//	per element: u8 tag, i16 x, i16 y, variant payload
//	  line:      u16 wordCount, per word: u16 len, bytes, u8 flags, i16 x
//	  image:     u32 bitmapID, u16 width, u16 height
//	  separator: i16 width

// EncodePage serializes one page body to w. The caller records the write
// offset before calling; offsets form the cache LUT.
func EncodePage(w io.Writer, page *layout.Page) error {
	if err := binary.Write(w, binary.LittleEndian, uint16(len(page.Elements))); err != nil {
		return fmt.Errorf("encode element count: %w", err)
	}
	for i := range page.Elements {
		if err := encodeElement(w, &page.Elements[i]); err != nil {
			return fmt.Errorf("encode element %d: %w", i, err)
		}
	}
	return nil
}

func encodeElement(w io.Writer, el *layout.Element) error {
	head := struct {
		Tag  uint8
		X, Y int16
	}{uint8(el.Tag), el.X, el.Y}
	if err := binary.Write(w, binary.LittleEndian, head); err != nil {
		return err
	}

	switch el.Tag {
	case layout.TagLine:
		if err := binary.Write(w, binary.LittleEndian, uint16(len(el.Line.Words))); err != nil {
			return err
		}
		for _, word := range el.Line.Words {
			// The length prefix is a u16; a longer word would truncate
			// the prefix while the full bytes follow, desyncing the
			// stream.
			if len(word.Text) > math.MaxUint16 {
				return fmt.Errorf("%w: word of %d bytes exceeds the length prefix", ErrCorrupt, len(word.Text))
			}
			if err := binary.Write(w, binary.LittleEndian, uint16(len(word.Text))); err != nil {
				return err
			}
			if _, err := w.Write([]byte(word.Text)); err != nil {
				return err
			}
			tail := struct {
				Flags uint8
				X     int16
			}{uint8(word.Flags), word.X}
			if err := binary.Write(w, binary.LittleEndian, tail); err != nil {
				return err
			}
		}
		return nil

	case layout.TagImage:
		return binary.Write(w, binary.LittleEndian, el.Image)

	case layout.TagSeparator:
		return binary.Write(w, binary.LittleEndian, el.Width)

	default:
		return fmt.Errorf("%w: unknown tag %d", ErrCorrupt, el.Tag)
	}
}

// DecodePage reads exactly one page body from r. Unknown element tags
// surface as ErrCorrupt, never as a panic.
func DecodePage(r io.Reader) (*layout.Page, error) {
	var count uint16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: element count: %w", ErrCorrupt, err)
	}

	page := &layout.Page{Elements: make([]layout.Element, 0, count)}
	for i := 0; i < int(count); i++ {
		el, err := decodeElement(r)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrCorrupt, i, err)
		}
		page.Elements = append(page.Elements, el)
	}
	return page, nil
}

func decodeElement(r io.Reader) (layout.Element, error) {
	var head struct {
		Tag  uint8
		X, Y int16
	}
	if err := binary.Read(r, binary.LittleEndian, &head); err != nil {
		return layout.Element{}, err
	}

	el := layout.Element{Tag: layout.Tag(head.Tag), X: head.X, Y: head.Y}

	switch el.Tag {
	case layout.TagLine:
		var wordCount uint16
		if err := binary.Read(r, binary.LittleEndian, &wordCount); err != nil {
			return layout.Element{}, err
		}
		words := make([]layout.Word, 0, wordCount)
		for i := 0; i < int(wordCount); i++ {
			var textLen uint16
			if err := binary.Read(r, binary.LittleEndian, &textLen); err != nil {
				return layout.Element{}, err
			}
			text := make([]byte, textLen)
			if _, err := io.ReadFull(r, text); err != nil {
				return layout.Element{}, err
			}
			var tail struct {
				Flags uint8
				X     int16
			}
			if err := binary.Read(r, binary.LittleEndian, &tail); err != nil {
				return layout.Element{}, err
			}
			words = append(words, layout.Word{
				Text:  string(text),
				Flags: layout.StyleFlags(tail.Flags),
				X:     tail.X,
			})
		}
		el.Line = layout.Line{Words: words}
		return el, nil

	case layout.TagImage:
		if err := binary.Read(r, binary.LittleEndian, &el.Image); err != nil {
			return layout.Element{}, err
		}
		return el, nil

	case layout.TagSeparator:
		if err := binary.Read(r, binary.LittleEndian, &el.Width); err != nil {
			return layout.Element{}, err
		}
		return el, nil

	default:
		return layout.Element{}, fmt.Errorf("unknown tag %d", head.Tag)
	}
}
