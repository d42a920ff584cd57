package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finch-reader/finch/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Run("creates a new file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.bin")
		require.NoError(t, fsutil.WriteAtomic(path, []byte("hello"), 0))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), data)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())
	})

	t.Run("replaces existing content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.bin")
		require.NoError(t, fsutil.WriteAtomic(path, []byte("old"), 0))
		require.NoError(t, fsutil.WriteAtomic(path, []byte("new"), 0))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), data)
	})

	t.Run("honors explicit mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.bin")
		require.NoError(t, fsutil.WriteAtomic(path, []byte("x"), 0o600))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("missing directory fails cleanly", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no", "such", "dir", "state.bin")
		require.Error(t, fsutil.WriteAtomic(path, []byte("x"), 0))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state.bin")
		require.NoError(t, fsutil.WriteAtomic(path, []byte("x"), 0))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "state.bin", entries[0].Name())
	})
}
