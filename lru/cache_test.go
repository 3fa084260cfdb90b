package lru_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/docnamer/lru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Parallel()

	t.Run("round-trips name lists", func(t *testing.T) {
		t.Parallel()

		cache, err := lru.NewCache(8)
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, cache.Put(ctx, "com.example.Foo#process(int)", []string{"count"}))

		names, ok, err := cache.Get(ctx, "com.example.Foo#process(int)")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []string{"count"}, names)
	})

	t.Run("misses cleanly", func(t *testing.T) {
		t.Parallel()

		cache, err := lru.NewCache(8)
		require.NoError(t, err)

		_, ok, err := cache.Get(context.Background(), "unknown")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("caches zero-arity results", func(t *testing.T) {
		t.Parallel()

		cache, err := lru.NewCache(8)
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, cache.Put(ctx, "com.example.Foo#reset()", []string{}))

		names, ok, err := cache.Get(ctx, "com.example.Foo#reset()")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Empty(t, names)
	})

	t.Run("evicts least recently used entries at capacity", func(t *testing.T) {
		t.Parallel()

		cache, err := lru.NewCache(2)
		require.NoError(t, err)

		ctx := context.Background()
		for i := 0; i < 3; i++ {
			require.NoError(t, cache.Put(ctx, fmt.Sprintf("key-%d", i), []string{"x"}))
		}
		assert.Equal(t, 2, cache.Len())

		_, ok, err := cache.Get(ctx, "key-0")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rejects a non-positive size", func(t *testing.T) {
		t.Parallel()

		_, err := lru.NewCache(0)
		require.Error(t, err)
	})
}
