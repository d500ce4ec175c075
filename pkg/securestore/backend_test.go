package securestore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lloms/securekit/pkg/securestore"
)

func TestMemoryBackend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b := securestore.NewMemoryBackend()

	_, ok, err := b.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Set(ctx, "a", "1"))
	require.NoError(t, b.Set(ctx, "a", "2"))
	v, ok, err := b.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)
	assert.Equal(t, 1, b.Len())

	require.NoError(t, b.Delete(ctx, "a"))
	require.NoError(t, b.Delete(ctx, "a"))
	assert.Zero(t, b.Len())
}

func TestLRUBackend_Eviction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("evict least recently used", func(t *testing.T) {
		b := securestore.NewLRUBackend(3)

		require.NoError(t, b.Set(ctx, "a", "1"))
		require.NoError(t, b.Set(ctx, "b", "2"))
		require.NoError(t, b.Set(ctx, "c", "3"))
		require.NoError(t, b.Set(ctx, "d", "4"))

		_, ok, _ := b.Get(ctx, "a")
		assert.False(t, ok, "a should have been evicted")
		assert.Equal(t, 3, b.Len())
	})

	t.Run("get updates recency", func(t *testing.T) {
		b := securestore.NewLRUBackend(3)

		require.NoError(t, b.Set(ctx, "a", "1"))
		require.NoError(t, b.Set(ctx, "b", "2"))
		require.NoError(t, b.Set(ctx, "c", "3"))

		_, _, _ = b.Get(ctx, "a")
		require.NoError(t, b.Set(ctx, "d", "4"))

		_, ok, _ := b.Get(ctx, "b")
		assert.False(t, ok, "b should have been evicted")
		v, ok, _ := b.Get(ctx, "a")
		assert.True(t, ok)
		assert.Equal(t, "1", v)
	})

	t.Run("set updates recency", func(t *testing.T) {
		b := securestore.NewLRUBackend(2)

		require.NoError(t, b.Set(ctx, "a", "1"))
		require.NoError(t, b.Set(ctx, "b", "2"))
		require.NoError(t, b.Set(ctx, "a", "10"))
		require.NoError(t, b.Set(ctx, "c", "3"))

		_, ok, _ := b.Get(ctx, "b")
		assert.False(t, ok)
		v, _, _ := b.Get(ctx, "a")
		assert.Equal(t, "10", v)
	})

	t.Run("callback", func(t *testing.T) {
		b := securestore.NewLRUBackend(1)
		var evicted []string
		b.SetEvictCallback(func(key string) { evicted = append(evicted, key) })

		require.NoError(t, b.Set(ctx, "a", "1"))
		require.NoError(t, b.Set(ctx, "b", "2"))
		require.NoError(t, b.Set(ctx, "c", "3"))

		assert.Equal(t, []string{"a", "b"}, evicted)
	})

	t.Run("delete", func(t *testing.T) {
		b := securestore.NewLRUBackend(2)
		require.NoError(t, b.Set(ctx, "a", "1"))
		require.NoError(t, b.Delete(ctx, "a"))
		require.NoError(t, b.Delete(ctx, "missing"))
		assert.Zero(t, b.Len())
	})
}

func TestLRUBackend_InvalidCapacity(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { securestore.NewLRUBackend(0) })
	assert.Panics(t, func() { securestore.NewLRUBackend(-1) })
}

func TestLRUBackend_Concurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b := securestore.NewLRUBackend(10)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("k%d", (i*100+j)%20)
				_ = b.Set(ctx, key, key)
				_, _, _ = b.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, b.Len(), 10)
}
