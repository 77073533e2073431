package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	t.Run("creates new file with default perm", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")

		require.NoError(t, WriteFile(path, []byte("KEY=value\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "KEY=value\n", string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultPerm, info.Mode().Perm())
	})

	t.Run("replaces content and keeps perm", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("OLD=1\n"), 0600))
		require.NoError(t, os.Chmod(path, 0600))

		require.NoError(t, WriteFile(path, []byte("NEW=2\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "NEW=2\n", string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("creates missing parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", ".env")

		require.NoError(t, WriteFile(path, []byte("A=1\n")))
		assert.True(t, Exists(path))
	})

	t.Run("refuses directory target", func(t *testing.T) {
		dir := t.TempDir()
		assert.Error(t, WriteFile(dir, []byte("A=1\n")))
	})
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	assert.False(t, Exists(path))
	require.NoError(t, os.WriteFile(path, nil, 0644))
	assert.True(t, Exists(path))
	assert.False(t, Exists(dir), "directories are not files")
}

func TestReadFile(t *testing.T) {
	t.Run("missing file returns nil", func(t *testing.T) {
		data, err := ReadFile(filepath.Join(t.TempDir(), "missing"))
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("X=1\n"), 0644))

		data, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "X=1\n", string(data))
	})
}
