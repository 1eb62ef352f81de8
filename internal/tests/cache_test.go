package tests

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falvarado7/grubdash/internal/domain"
	"github.com/falvarado7/grubdash/internal/storage"
)

func newTestCache(t *testing.T) (*storage.RedisDishCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisDishCache(client, time.Minute), server
}

func TestDishCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	dish := &domain.Dish{ID: 1, Name: "Taco", Description: "Crunchy", ImageURL: "taco.png", Price: 3}
	cache.SetDish(ctx, dish)

	got, ok := cache.GetDish(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, dish, got)
}

func TestDishCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	_, ok := cache.GetDish(context.Background(), 404)
	assert.False(t, ok)
}

func TestDishCacheListRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	dishes := []domain.Dish{
		{ID: 1, Name: "Taco", Price: 3},
		{ID: 2, Name: "Soda", Price: 1},
	}
	cache.SetList(ctx, dishes)

	got, ok := cache.GetList(ctx)
	require.True(t, ok)
	assert.Equal(t, dishes, got)
}

func TestDishCacheInvalidateDropsDishAndList(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.SetDish(ctx, &domain.Dish{ID: 1, Name: "Taco"})
	cache.SetList(ctx, []domain.Dish{{ID: 1, Name: "Taco"}})

	cache.Invalidate(ctx, 1)

	_, ok := cache.GetDish(ctx, 1)
	assert.False(t, ok)
	_, ok = cache.GetList(ctx)
	assert.False(t, ok)
}

func TestDishCacheEntriesExpire(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	cache.SetDish(ctx, &domain.Dish{ID: 1, Name: "Taco"})
	server.FastForward(2 * time.Minute)

	_, ok := cache.GetDish(ctx, 1)
	assert.False(t, ok)
}

func TestDishCacheCorruptEntryReadsAsMiss(t *testing.T) {
	cache, server := newTestCache(t)

	require.NoError(t, server.Set("dish:1", "{not json"))

	_, ok := cache.GetDish(context.Background(), 1)
	assert.False(t, ok)
}
