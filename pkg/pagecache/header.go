// Package pagecache serializes laid-out pages into a binary cache file
// with a page-offset lookup table, giving O(1) random access to any page
// without re-running the tokenizer or layout engine. The cache is only
// valid for the exact rendering configuration it was built under; any
// parameter mismatch invalidates the whole file.
package pagecache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/finch-reader/finch/pkg/config"
)

// Version is the cache file format version.
const Version uint8 = 1

// Sentinel errors for cache categorization via errors.Is.
var (
	// ErrInvalid means the cache does not match the requested
	// configuration, or its book-keeping is inconsistent (unpatched or
	// truncated file). The caller should delete and rebuild.
	ErrInvalid = errors.New("pagecache: cache invalid")

	// ErrCorrupt means a page body failed to decode.
	ErrCorrupt = errors.New("pagecache: cache corrupt")

	// ErrOutOfRange means a page index is outside the LUT.
	ErrOutOfRange = errors.New("pagecache: page index out of range")
)

// header is the fixed-size cache file header, written little-endian.
// PageCount and LUTOffset start as zero placeholders and are backpatched
// after the last page body; a build that never reaches the backpatch
// leaves a header that Open rejects.
type header struct {
	Version               uint8
	FontID                int32
	LineCompression       float32
	ExtraParagraphSpacing uint8
	ParagraphAlignment    uint8
	ViewportWidth         uint16
	ViewportHeight        uint16
	HyphenationEnabled    uint8
	PageCount             uint16
	LUTOffset             uint32
}

// headerSize is the encoded header length in bytes.
const headerSize = 1 + 4 + 4 + 1 + 1 + 2 + 2 + 1 + 2 + 4

// backpatchOffset is where PageCount begins, for the final header patch.
const backpatchOffset = headerSize - 4 - 2

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// newHeader derives the cached parameter block from a render config.
func newHeader(cfg config.Render) header {
	return header{
		Version:               Version,
		FontID:                int32(cfg.FontID),
		LineCompression:       cfg.LineCompression,
		ExtraParagraphSpacing: boolByte(cfg.ExtraParagraphSpacing),
		ParagraphAlignment:    uint8(cfg.Alignment),
		ViewportWidth:         cfg.ViewportWidth,
		ViewportHeight:        cfg.ViewportHeight,
		HyphenationEnabled:    boolByte(cfg.HyphenationEnabled),
	}
}

func (h header) write(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

func readHeader(r io.Reader) (header, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return header{}, fmt.Errorf("read header: %w", err)
	}
	return h, nil
}

// matches reports whether the cached parameters equal the requested
// configuration. A version bump always fails the match.
func (h header) matches(cfg config.Render) bool {
	want := newHeader(cfg)
	want.PageCount = h.PageCount
	want.LUTOffset = h.LUTOffset
	return h == want
}
