package zip_test

import (
	archivezip "archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docnamer"
	"github.com/fwojciec/docnamer/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeArchive creates a zip file in a temp dir with the given entries.
func writeArchive(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "docs.zip")
	file, err := os.Create(path)
	require.NoError(t, err)

	w := archivezip.NewWriter(file)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, file.Close())
	return path
}

func TestNewLocator(t *testing.T) {
	t.Parallel()

	t.Run("accepts an archive with the sentinel entry", func(t *testing.T) {
		t.Parallel()

		path := writeArchive(t, map[string]string{
			"docs/api/package-list":         "com.example\n",
			"docs/api/com/example/Foo.html": "<html></html>",
		})

		locator, err := zip.NewLocator(path)
		require.NoError(t, err)
		defer locator.Close()
	})

	t.Run("rejects an archive without the sentinel", func(t *testing.T) {
		t.Parallel()

		path := writeArchive(t, map[string]string{
			"readme.txt": "not documentation",
		})

		_, err := zip.NewLocator(path)
		require.Error(t, err)
		assert.Equal(t, docnamer.ENOTFOUND, docnamer.ErrorCode(err))
	})

	t.Run("rejects a file that is not an archive", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "not-a-zip")
		require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

		_, err := zip.NewLocator(path)
		require.Error(t, err)
		assert.Equal(t, docnamer.EINVALID, docnamer.ErrorCode(err))
	})
}

func TestLocator_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("finds entries by path suffix", func(t *testing.T) {
		t.Parallel()

		path := writeArchive(t, map[string]string{
			"docs/api/package-list":         "com.example\n",
			"docs/api/com/example/Foo.html": "<html>foo</html>",
		})

		locator, err := zip.NewLocator(path)
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

		path := writeArchive(t, map[string]string{
			"package-list": "com.example\n",
		})

		locator, err := zip.NewLocator(path)
		require.NoError(t, err)
		defer locator.Close()

		_, err = locator.Fetch(context.Background(), "com/example/Missing.html")
		require.Error(t, err)
		assert.Equal(t, docnamer.ENOTFOUND, docnamer.ErrorCode(err))
	})
}
