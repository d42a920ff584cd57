// Package reader ties the rendering pipeline together into a reading
// session: it opens a document, reuses or rebuilds its page cache, and
// tracks the current page across restarts.
package reader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/finch-reader/finch/internal/logging"
	"github.com/finch-reader/finch/pkg/config"
	"github.com/finch-reader/finch/pkg/document"
	"github.com/finch-reader/finch/pkg/font"
	"github.com/finch-reader/finch/pkg/layout"
	"github.com/finch-reader/finch/pkg/pagecache"
)

// ErrNoPages is returned when a document paginates to zero pages.
var ErrNoPages = errors.New("document has no pages")

// Session is an open document plus its validated page cache and the
// reader's position in it. Safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	doc     *document.File
	cache   *pagecache.Cache
	current int
}

// Open starts a reading session for the document at path. An existing
// page cache is reused when it matches cfg; otherwise it is deleted and
// rebuilt from the source. The session resumes at the last saved page.
func Open(ctx context.Context, path string, cfg config.Render,
	fonts *font.Registry, newBlock layout.BlockFactory) (*Session, error) {
	logger := logging.FromContext(ctx)

	doc, err := document.Open(path)
	if err != nil {
		return nil, err
	}

	cache, err := openOrBuild(ctx, doc, cfg, fonts, newBlock)
	if err != nil {
		doc.Close()
		return nil, err
	}
	if cache.PageCount() == 0 {
		cache.Close()
		doc.Close()
		return nil, ErrNoPages
	}

	s := &Session{doc: doc, cache: cache}
	s.current = clampPage(loadProgress(doc.ProgressPath()), cache.PageCount())

	logger.Debug("session opened",
		logging.FieldPath, path,
		logging.FieldPages, cache.PageCount(),
		logging.FieldPage, s.current+1)
	return s, nil
}

// openOrBuild reuses a matching cache or rebuilds it. Only ErrInvalid
// triggers a rebuild; I/O failures surface to the caller.
func openOrBuild(ctx context.Context, doc *document.File, cfg config.Render,
	fonts *font.Registry, newBlock layout.BlockFactory) (*pagecache.Cache, error) {
	logger := logging.FromContext(ctx)

	if err := doc.EnsureCacheDir(); err != nil {
		return nil, err
	}

	cache, err := pagecache.Open(doc.CachePath(), cfg)
	if err == nil {
		logger.Debug("reusing page cache", logging.FieldPath, doc.CachePath())
		return cache, nil
	}
	if !errors.Is(err, pagecache.ErrInvalid) && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	logger.Debug("rebuilding page cache", logging.FieldPath, doc.CachePath(), logging.FieldError, err)
	_ = os.Remove(doc.CachePath())

	if _, err := pagecache.Build(ctx, doc, doc.CachePath(), cfg, fonts, newBlock); err != nil {
		return nil, fmt.Errorf("rebuild cache: %w", err)
	}
	return pagecache.Open(doc.CachePath(), cfg)
}

// Close saves progress and releases the cache and document files.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.saveProgressLocked()
	if cerr := s.cache.Close(); err == nil {
		err = cerr
	}
	if derr := s.doc.Close(); err == nil {
		err = derr
	}
	return err
}

// Document returns the underlying document file.
func (s *Session) Document() *document.File { return s.doc }

// PageCount returns the total number of pages.
func (s *Session) PageCount() int { return s.cache.PageCount() }

// PageNumber returns the current page number, 1-based.
func (s *Session) PageNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current + 1
}

// Page decodes and returns the current page.
func (s *Session) Page() (*layout.Page, error) {
	s.mu.Lock()
	index := s.current
	s.mu.Unlock()
	return s.cache.Page(index)
}

// Next advances one page and returns it. At the last page it stays put.
func (s *Session) Next() (*layout.Page, error) {
	return s.step(1)
}

// Prev steps back one page and returns it. At the first page it stays put.
func (s *Session) Prev() (*layout.Page, error) {
	return s.step(-1)
}

func (s *Session) step(delta int) (*layout.Page, error) {
	s.mu.Lock()
	s.current = clampPage(s.current+delta, s.cache.PageCount())
	index := s.current
	s.mu.Unlock()
	return s.cache.Page(index)
}

// Seek jumps to the given 0-based page index.
func (s *Session) Seek(index int) (*layout.Page, error) {
	if index < 0 || index >= s.cache.PageCount() {
		return nil, fmt.Errorf("%w: %d of %d", pagecache.ErrOutOfRange, index, s.cache.PageCount())
	}
	s.mu.Lock()
	s.current = index
	s.mu.Unlock()
	return s.cache.Page(index)
}

// SaveProgress persists the current page index.
func (s *Session) SaveProgress() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveProgressLocked()
}

func clampPage(index, count int) int {
	if index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}
