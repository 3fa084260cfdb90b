package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/docnamer"
	dochttp "github.com/fwojciec/docnamer/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// docServer serves a minimal documentation tree.
func docServer(pages map[string]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(content))
	}))
}

func TestNewLocator(t *testing.T) {
	t.Parallel()

	t.Run("validates reachability via the sentinel", func(t *testing.T) {
		t.Parallel()

		var sentinelFetches atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/package-list" {
				sentinelFetches.Add(1)
				_, _ = w.Write([]byte("com.example\n"))
				return
			}
			http.NotFound(w, r)
		}))
		defer server.Close()

		locator, err := dochttp.NewLocator(context.Background(), server.URL)
		require.NoError(t, err)
		defer locator.Close()
		assert.Equal(t, int32(1), sentinelFetches.Load())
	})

	t.Run("rejects a URL without the sentinel", func(t *testing.T) {
		t.Parallel()

		server := docServer(map[string]string{"/index.html": "<html></html>"})
		defer server.Close()

		_, err := dochttp.NewLocator(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, docnamer.ENOTFOUND, docnamer.ErrorCode(err))
	})

	t.Run("rejects an unreachable URL", func(t *testing.T) {
		t.Parallel()

		server := docServer(nil)
		server.Close() // already closed, nothing listens

		_, err := dochttp.NewLocator(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, docnamer.ENOTFOUND, docnamer.ErrorCode(err))
	})

	t.Run("tolerates a trailing slash on the base URL", func(t *testing.T) {
		t.Parallel()

		server := docServer(map[string]string{"/package-list": "com.example\n"})
		defer server.Close()

		locator, err := dochttp.NewLocator(context.Background(), server.URL+"/")
		require.NoError(t, err)
		defer locator.Close()
	})
}

func TestLocator_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the page body", func(t *testing.T) {
		t.Parallel()

		server := docServer(map[string]string{
			"/package-list":         "com.example\n",
			"/com/example/Foo.html": "<html>foo</html>",
		})
		defer server.Close()

		locator, err := dochttp.NewLocator(context.Background(), server.URL)
		require.NoError(t, err)
		defer locator.Close()

		stream, err := locator.Fetch(context.Background(), "com/example/Foo.html")
		require.NoError(t, err)
		defer stream.Close()

		content, err := io.ReadAll(stream)
		require.NoError(t, err)
		assert.Equal(t, "<html>foo</html>", string(content))
	})

	t.Run("reports non-success responses as not found", func(t *testing.T) {
		t.Parallel()

		server := docServer(map[string]string{"/package-list": "com.example\n"})
		defer server.Close()

		locator, err := dochttp.NewLocator(context.Background(), server.URL)
		require.NoError(t, err)
		defer locator.Close()

		_, err = locator.Fetch(context.Background(), "com/example/Missing.html")
		require.Error(t, err)
		assert.Equal(t, docnamer.ENOTFOUND, docnamer.ErrorCode(err))
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/package-list" {
				_, _ = w.Write([]byte("com.example\n"))
				return
			}
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("slow"))
		}))
		defer server.Close()

		locator, err := dochttp.NewLocator(context.Background(), server.URL, dochttp.WithTimeout(10*time.Millisecond))
		require.NoError(t, err)
		defer locator.Close()

		_, err = locator.Fetch(context.Background(), "com/example/Slow.html")
		require.Error(t, err)
	})

	t.Run("respects context cancellation through the rate limiter", func(t *testing.T) {
		t.Parallel()

		server := docServer(map[string]string{"/package-list": "com.example\n"})
		defer server.Close()

		// A tiny rate forces the second fetch to wait on the limiter.
		locator, err := dochttp.NewLocator(context.Background(), server.URL, dochttp.WithLimiter(0.001))
		require.NoError(t, err)
		defer locator.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = locator.Fetch(ctx, "package-list")
		require.Error(t, err)
	})
}
