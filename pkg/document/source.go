// Package document abstracts the raw markup source the rendering
// pipeline reads from, and owns the per-document cache locations.
package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Source is a randomly-readable document of known size. Reads carry no
// cursor state, so the pipeline and the page cache can share one source.
type Source interface {
	io.ReaderAt

	// Size returns the document length in bytes.
	Size() int64
}

// File is a document backed by a file on storage.
type File struct {
	path string
	size int64
	f    *os.File
}

// Open opens a document file for reading.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat document: %w", err)
	}

	return &File{path: path, size: stat.Size(), f: f}, nil
}

// Close releases the underlying file.
func (d *File) Close() error {
	return d.f.Close()
}

// Path returns the document's file path.
func (d *File) Path() string { return d.path }

// Size returns the document length in bytes.
func (d *File) Size() int64 { return d.size }

// ReadAt implements io.ReaderAt.
func (d *File) ReadAt(p []byte, off int64) (int, error) {
	return d.f.ReadAt(p, off)
}

// Stem returns the file name without its extension.
func (d *File) Stem() string {
	base := filepath.Base(d.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CacheDir returns the hidden sibling directory holding this document's
// rendering artifacts.
func (d *File) CacheDir() string {
	return filepath.Join(filepath.Dir(d.path), "."+filepath.Base(d.path)+".cache")
}

// EnsureCacheDir creates the cache directory if needed.
func (d *File) EnsureCacheDir() error {
	if err := os.MkdirAll(d.CacheDir(), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	return nil
}

// CachePath returns the page cache file path.
func (d *File) CachePath() string {
	return filepath.Join(d.CacheDir(), "section.bin")
}

// ProgressPath returns the reading progress file path.
func (d *File) ProgressPath() string {
	return filepath.Join(d.CacheDir(), "progress.bin")
}
