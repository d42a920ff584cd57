package reader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finch-reader/finch/internal/fit"
	"github.com/finch-reader/finch/pkg/config"
	"github.com/finch-reader/finch/pkg/font"
	"github.com/finch-reader/finch/pkg/pagecache"
	"github.com/finch-reader/finch/pkg/reader"
)

const sampleBook = `# A Short Book

one two three four five six seven eight nine ten eleven twelve thirteen
fourteen fifteen sixteen seventeen eighteen nineteen twenty

more words to push the pagination across several small pages and then
a few more for good measure
`

func newSessionRegistry(t *testing.T) *font.Registry {
	t.Helper()

	glyphs := make([]font.Glyph, '~'-' '+1)
	for i := range glyphs {
		glyphs[i] = font.Glyph{Width: 10, Height: 10, Top: 10, AdvanceX: 10}
	}
	f, err := font.New(font.Params{
		ID:          1,
		LineHeight:  10,
		Replacement: '?',
		Intervals:   []font.Interval{{First: ' ', Last: '~', Offset: 0}},
		Glyphs:      glyphs,
	})
	require.NoError(t, err)

	reg := font.NewRegistry()
	require.NoError(t, reg.Register(f))
	return reg
}

func sessionConfig() config.Render {
	cfg := config.Default()
	cfg.ViewportWidth = 200
	cfg.ViewportHeight = 50
	return cfg
}

func writeBook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleBook), 0o644))
	return path
}

func openSession(t *testing.T, path string, cfg config.Render) *reader.Session {
	t.Helper()
	fonts := newSessionRegistry(t)
	s, err := reader.Open(context.Background(), path, cfg, fonts, fit.NewFactory(fonts, cfg))
	require.NoError(t, err)
	return s
}

func TestSession_OpenBuildsCache(t *testing.T) {
	path := writeBook(t)
	s := openSession(t, path, sessionConfig())
	defer s.Close()

	require.Greater(t, s.PageCount(), 1, "the sample must span pages")
	assert.Equal(t, 1, s.PageNumber(), "fresh session starts at page one")

	page, err := s.Page()
	require.NoError(t, err)
	assert.NotEmpty(t, page.Elements)
}

func TestSession_Navigation(t *testing.T) {
	path := writeBook(t)
	s := openSession(t, path, sessionConfig())
	defer s.Close()

	total := s.PageCount()

	t.Run("next advances and clamps at the end", func(t *testing.T) {
		for i := 2; i <= total; i++ {
			_, err := s.Next()
			require.NoError(t, err)
			assert.Equal(t, i, s.PageNumber())
		}
		_, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, total, s.PageNumber(), "stays on the last page")
	})

	t.Run("prev steps back and clamps at the start", func(t *testing.T) {
		_, err := s.Seek(0)
		require.NoError(t, err)
		_, err = s.Prev()
		require.NoError(t, err)
		assert.Equal(t, 1, s.PageNumber(), "stays on the first page")
	})

	t.Run("seek jumps directly", func(t *testing.T) {
		_, err := s.Seek(total - 1)
		require.NoError(t, err)
		assert.Equal(t, total, s.PageNumber())

		_, err = s.Seek(total)
		require.ErrorIs(t, err, pagecache.ErrOutOfRange)
		_, err = s.Seek(-1)
		require.ErrorIs(t, err, pagecache.ErrOutOfRange)
	})
}

func TestSession_ProgressSurvivesReopen(t *testing.T) {
	path := writeBook(t)
	cfg := sessionConfig()

	s := openSession(t, path, cfg)
	_, err := s.Next()
	require.NoError(t, err)
	wantPage := s.PageNumber()
	require.NoError(t, s.Close())

	resumed := openSession(t, path, cfg)
	defer resumed.Close()
	assert.Equal(t, wantPage, resumed.PageNumber())
}

func TestSession_ReusesCache(t *testing.T) {
	path := writeBook(t)
	cfg := sessionConfig()

	s := openSession(t, path, cfg)
	cachePath := s.Document().CachePath()
	require.NoError(t, s.Close())

	before, err := os.Stat(cachePath)
	require.NoError(t, err)

	s = openSession(t, path, cfg)
	require.NoError(t, s.Close())

	after, err := os.Stat(cachePath)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime(), "matching cache is not rebuilt")
}

func TestSession_RebuildsStaleCache(t *testing.T) {
	path := writeBook(t)
	cfg := sessionConfig()

	s := openSession(t, path, cfg)
	firstCount := s.PageCount()
	require.NoError(t, s.Close())

	// A different viewport invalidates the cache and forces a rebuild.
	narrow := cfg
	narrow.ViewportHeight = 30
	s = openSession(t, path, narrow)
	defer s.Close()
	assert.Greater(t, s.PageCount(), firstCount)
}

func TestSession_ClampsSavedProgress(t *testing.T) {
	path := writeBook(t)
	cfg := sessionConfig()

	s := openSession(t, path, cfg)
	progressPath := s.Document().ProgressPath()
	require.NoError(t, s.Close())

	// A progress index past the end, as after a shrinking rebuild.
	require.NoError(t, os.WriteFile(progressPath, []byte{0xFF, 0x00, 0x00, 0x00}, 0o644))

	s = openSession(t, path, cfg)
	defer s.Close()
	assert.Equal(t, s.PageCount(), s.PageNumber(), "clamped to the last page")
}
