package pagecache

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/finch-reader/finch/internal/logging"
	"github.com/finch-reader/finch/pkg/config"
	"github.com/finch-reader/finch/pkg/document"
	"github.com/finch-reader/finch/pkg/font"
	"github.com/finch-reader/finch/pkg/layout"
	"github.com/finch-reader/finch/pkg/markdown"
)

// Build runs the full tokenize-layout-serialize pipeline over src and
// writes the page cache to path. Pages stream straight to the file one
// at a time; the whole document is never resident.
//
// The header is written first with zero placeholders for page count and
// LUT offset, and backpatched only after the last page body and the LUT
// are on disk. An aborted build therefore leaves a self-invalidating
// file, and on any error the file is removed entirely so the next load
// rebuilds from scratch.
//
// Build honors ctx between lines; cancellation aborts the same way as a
// read failure. Returns the number of pages written.
func Build(ctx context.Context, src document.Source, path string, cfg config.Render,
	fonts *font.Registry, newBlock layout.BlockFactory) (int, error) {
	logger := logging.FromContext(ctx)

	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create cache: %w", err)
	}

	pages, err := build(ctx, f, src, cfg, fonts, newBlock)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// Never leave a partial cache behind.
		_ = os.Remove(path)
		return 0, err
	}

	logger.Debug("built page cache", logging.FieldPath, path, logging.FieldPages, pages)
	return pages, nil
}

func build(ctx context.Context, f *os.File, src document.Source, cfg config.Render,
	fonts *font.Registry, newBlock layout.BlockFactory) (int, error) {
	logger := logging.FromContext(ctx)

	if err := newHeader(cfg).write(f); err != nil {
		return 0, err
	}

	var (
		lut      []uint32
		offset   = uint32(headerSize)
		writeErr error
	)

	engine := layout.NewEngine(cfg, fonts, newBlock, func(page *layout.Page) {
		if writeErr != nil {
			return
		}
		start := offset
		counting := &countingWriter{w: f}
		if writeErr = EncodePage(counting, page); writeErr != nil {
			return
		}
		offset += uint32(counting.n)
		lut = append(lut, start)
		logger.Debug("page serialized", logging.FieldPage, len(lut), logging.FieldOffset, start)
	})

	tokenizer := markdown.NewTokenizer(engine.HandleToken)
	err := document.ForEachLine(src, func(line string) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cache build canceled: %w", err)
		}
		tokenizer.FeedLine(line)
		return writeErr
	})
	if err != nil {
		return 0, err
	}

	tokenizer.Finish()
	engine.Finish()
	if writeErr != nil {
		return 0, writeErr
	}

	lutOffset := offset
	for _, pos := range lut {
		if err := binary.Write(f, binary.LittleEndian, pos); err != nil {
			return 0, fmt.Errorf("write lut: %w", err)
		}
	}

	// Backpatch page count and LUT offset; this is what makes the cache
	// loadable.
	if _, err := f.Seek(backpatchOffset, 0); err != nil {
		return 0, fmt.Errorf("seek header: %w", err)
	}
	patch := struct {
		PageCount uint16
		LUTOffset uint32
	}{uint16(len(lut)), lutOffset}
	if err := binary.Write(f, binary.LittleEndian, patch); err != nil {
		return 0, fmt.Errorf("patch header: %w", err)
	}

	return len(lut), nil
}

// countingWriter tracks bytes written so page body sizes feed the LUT.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
