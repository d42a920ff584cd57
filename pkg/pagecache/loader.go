package pagecache

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/finch-reader/finch/pkg/config"
	"github.com/finch-reader/finch/pkg/layout"
)

// Cache is an opened, validated page cache. Page reads are stateless
// single seek-and-decode operations; no cursor carries between calls.
type Cache struct {
	f   *os.File
	hdr header
	lut []uint32
}

// Open reads and validates a cache file against the requested
// configuration. A format version, rendering parameter, unpatched
// book-keeping, or truncation mismatch returns ErrInvalid; the caller
// should delete the file and rebuild.
func Open(path string, cfg config.Render) (*Cache, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	c, err := load(f, cfg)
	if err != nil {
		f.Close()
		return nil, err
	}
	return c, nil
}

func load(f *os.File, cfg config.Render) (*Cache, error) {
	hdr, err := readHeader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if hdr.Version != Version {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrInvalid, hdr.Version, Version)
	}
	if !hdr.matches(cfg) {
		return nil, fmt.Errorf("%w: rendering parameters changed", ErrInvalid)
	}

	// An aborted build never backpatches the LUT offset; reject it here.
	if hdr.LUTOffset < headerSize {
		return nil, fmt.Errorf("%w: unpatched header", ErrInvalid)
	}

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat cache: %w", err)
	}
	wantSize := int64(hdr.LUTOffset) + int64(hdr.PageCount)*4
	if stat.Size() != wantSize {
		return nil, fmt.Errorf("%w: file size %d, want %d", ErrInvalid, stat.Size(), wantSize)
	}

	if _, err := f.Seek(int64(hdr.LUTOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek lut: %w", err)
	}
	lut := make([]uint32, hdr.PageCount)
	if err := binary.Read(f, binary.LittleEndian, lut); err != nil {
		return nil, fmt.Errorf("%w: read lut: %w", ErrInvalid, err)
	}

	return &Cache{f: f, hdr: hdr, lut: lut}, nil
}

// Close releases the underlying file.
func (c *Cache) Close() error {
	return c.f.Close()
}

// PageCount returns the number of cached pages.
func (c *Cache) PageCount() int {
	return len(c.lut)
}

// Page seeks to the LUT offset for index and decodes exactly one page
// body.
func (c *Cache) Page(index int) (*layout.Page, error) {
	if index < 0 || index >= len(c.lut) {
		return nil, fmt.Errorf("%w: %d of %d", ErrOutOfRange, index, len(c.lut))
	}

	section := io.NewSectionReader(c.f, int64(c.lut[index]), int64(c.hdr.LUTOffset)-int64(c.lut[index]))
	return DecodePage(bufio.NewReader(section))
}
