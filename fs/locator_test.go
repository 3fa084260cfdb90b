package fs_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docnamer"
	"github.com/fwojciec/docnamer/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeRoot creates a documentation directory with the given files.
func writeRoot(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestNewLocator(t *testing.T) {
	t.Parallel()

	t.Run("accepts a directory with the sentinel file", func(t *testing.T) {
		t.Parallel()

		root := writeRoot(t, map[string]string{"package-list": "com.example\n"})

		locator, err := fs.NewLocator(root)
		require.NoError(t, err)
		defer locator.Close()
	})

	t.Run("rejects a directory without the sentinel", func(t *testing.T) {
		t.Parallel()

		root := writeRoot(t, map[string]string{"index.html": "<html></html>"})

		_, err := fs.NewLocator(root)
		require.Error(t, err)
		assert.Equal(t, docnamer.ENOTFOUND, docnamer.ErrorCode(err))
	})

	t.Run("rejects a missing root", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLocator(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.Equal(t, docnamer.ENOTFOUND, docnamer.ErrorCode(err))
	})

	t.Run("rejects a root that is a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		_, err := fs.NewLocator(path)
		require.Error(t, err)
		assert.Equal(t, docnamer.EINVALID, docnamer.ErrorCode(err))
	})
}

func TestLocator_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("opens pages by relative path", func(t *testing.T) {
		t.Parallel()

		root := writeRoot(t, map[string]string{
			"package-list":         "com.example\n",
			"com/example/Foo.html": "<html>foo</html>",
		})

		locator, err := fs.NewLocator(root)
		require.NoError(t, err)
		defer locator.Close()

		stream, err := locator.Fetch(context.Background(), "com/example/Foo.html")
		require.NoError(t, err)
		defer stream.Close()

		content, err := io.ReadAll(stream)
		require.NoError(t, err)
		assert.Equal(t, "<html>foo</html>", string(content))
	})

	t.Run("reports missing pages as not found", func(t *testing.T) {
		t.Parallel()

		root := writeRoot(t, map[string]string{"package-list": "com.example\n"})

		locator, err := fs.NewLocator(root)
		require.NoError(t, err)
		defer locator.Close()

		_, err = locator.Fetch(context.Background(), "com/example/Missing.html")
		require.Error(t, err)
		assert.Equal(t, docnamer.ENOTFOUND, docnamer.ErrorCode(err))
	})
}
