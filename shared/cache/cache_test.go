package cache_test

import (
	"bloom/infras/otel/mocks"
	"bloom/shared/cache"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveGet(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "booking:slots:2024-06-01", []string{"10:00-11:00"}, 60))

	var slots []string
	require.NoError(t, c.Get(ctx, "booking:slots:2024-06-01", &slots))
	assert.Equal(t, []string{"10:00-11:00"}, slots)

	server.FastForward(61 * time.Second)

	err := c.Get(ctx, "booking:slots:2024-06-01", &slots)
	assert.ErrorIs(t, err, cache.Nil)
}

func TestRedisCache_GetString(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "plain", "value", 60))

	var out string
	require.NoError(t, c.Get(ctx, "plain", &out))
	assert.Equal(t, "value", out)
}

func TestRedisCache_GetBadJSON(t *testing.T) {
	c, server := newCache(t)

	require.NoError(t, server.Set("broken", "{not json"))

	var out []string
	err := c.Get(context.Background(), "broken", &out)

	require.Error(t, err)
	assert.NotErrorIs(t, err, cache.Nil)
}

func TestRedisCache_DeleteAndClear(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	for _, key := range []string{"booking:slots:a", "booking:slots:b", "limiter:x"} {
		require.NoError(t, c.Save(ctx, key, 1, 60))
	}

	require.NoError(t, c.Delete(ctx, "limiter:x"))
	assert.False(t, server.Exists("limiter:x"))

	require.NoError(t, c.Clear(ctx, "booking:slots:*"))
	assert.False(t, server.Exists("booking:slots:a"))
	assert.False(t, server.Exists("booking:slots:b"))
}

func TestRedisCache_Incr(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	value, err := c.Incr(ctx, "booking:generation:2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), value)

	value, err = c.Incr(ctx, "booking:generation:2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, int64(2), value)

	var stored int64
	require.NoError(t, c.Get(ctx, "booking:generation:2024-06-01", &stored))
	assert.Equal(t, int64(2), stored)

	server.Close()

	_, err = c.Incr(ctx, "booking:generation:2024-06-01")
	assert.Error(t, err)
}
