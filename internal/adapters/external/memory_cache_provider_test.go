package external

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherview.app/internal/adapters/infrastructure"
	"weatherview.app/pkg/errors"
)

func newMemoryCache(t *testing.T) *MemoryCacheProviderAdapter {
	t.Helper()
	cache := NewMemoryCacheProviderAdapter(infrastructure.NewCacheMetrics(prometheus.NewRegistry(), "memory"))
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestMemoryCacheProviderAdapter_SetAndGet(t *testing.T) {
	cache := newMemoryCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "weather:Moscow", []byte("value"), time.Minute))

	retrieved, err := cache.Get(ctx, "weather:Moscow")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), retrieved)
}

func TestMemoryCacheProviderAdapter_MissIsNotFound(t *testing.T) {
	cache := newMemoryCache(t)

	_, err := cache.Get(context.Background(), "weather:Berlin")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMemoryCacheProviderAdapter_NonPositiveTTLIsRejected(t *testing.T) {
	cache := newMemoryCache(t)
	ctx := context.Background()

	for _, ttl := range []time.Duration{0, -time.Second} {
		err := cache.Set(ctx, "weather:London", []byte("value"), ttl)
		assert.True(t, errors.IsValidationError(err))
	}

	_, err := cache.Get(ctx, "weather:London")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMemoryCacheProviderAdapter_LazyExpiry(t *testing.T) {
	cache := newMemoryCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "weather:London", []byte("value"), 20*time.Millisecond))

	time.Sleep(50 * time.Millisecond)

	// Expired entries are reported absent on read even before the janitor runs
	_, err := cache.Get(ctx, "weather:London")
	assert.True(t, errors.IsNotFoundError(err))

	exists, err := cache.Exists(ctx, "weather:London")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCacheProviderAdapter_DeleteAndClear(t *testing.T) {
	cache := newMemoryCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, cache.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, cache.Delete(ctx, "a"))
	_, err := cache.Get(ctx, "a")
	assert.Error(t, err)

	require.NoError(t, cache.Clear(ctx))
	_, err = cache.Get(ctx, "b")
	assert.Error(t, err)
}
