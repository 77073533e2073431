package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("KEY=value\n"), 0644))
	}
}

func TestFindEnvFiles(t *testing.T) {
	t.Run("lists env files sorted without templates", func(t *testing.T) {
		tmp := t.TempDir()
		touch(t, tmp, ".env.prod", ".env", ".env.dist", ".env.template", ".env.local", ".env.old.dist", "config.yaml")

		got, err := FindEnvFiles(tmp, filepath.Join(tmp, ".env.dist"))
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(tmp, ".env"),
			filepath.Join(tmp, ".env.local"),
			filepath.Join(tmp, ".env.prod"),
		}, got)
	})

	t.Run("excludes explicit template with other name", func(t *testing.T) {
		tmp := t.TempDir()
		touch(t, tmp, ".env", ".env.sample")

		got, err := FindEnvFiles(tmp, filepath.Join(tmp, ".env.sample"))
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(tmp, ".env")}, got)
	})

	t.Run("skips directories and nested files", func(t *testing.T) {
		tmp := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(tmp, ".env.d"), 0755))
		touch(t, filepath.Join(tmp, ".env.d"), ".env")
		touch(t, tmp, ".env")

		got, err := FindEnvFiles(tmp, "")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(tmp, ".env")}, got)
	})

	t.Run("empty directory", func(t *testing.T) {
		got, err := FindEnvFiles(t.TempDir(), "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestIsTemplateFilename(t *testing.T) {
	for _, tt := range []struct {
		name string
		want bool
	}{
		{".env.dist", true},
		{".env.template", true},
		{".env.staging.dist", true},
		{".env", false},
		{".env.local", false},
		{".env.distant", false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTemplateFilename(tt.name))
		})
	}
}
