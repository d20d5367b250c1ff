package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/muzz-matchmaking/internal/cache"
	"github.com/oggyb/muzz-matchmaking/internal/config"
)

func setupCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	c := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestDailyLikes_MissSetInvalidate(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)

	_, err := c.GetDailyLikes(ctx, "alice", "2024-05-01")
	assert.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, c.SetDailyLikes(ctx, "alice", "2024-05-01", 3, time.Minute))
	n, err := c.GetDailyLikes(ctx, "alice", "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, time.Minute, mr.TTL("likes:daily:alice_2024-05-01"))

	require.NoError(t, c.InvalidateDailyLikes(ctx, "alice", "2024-05-01"))
	_, err = c.GetDailyLikes(ctx, "alice", "2024-05-01")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestDailyLikes_ExpiresWithTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)

	require.NoError(t, c.SetDailyLikes(ctx, "bob", "2024-05-01", 1, time.Second))
	mr.FastForward(2 * time.Second)

	_, err := c.GetDailyLikes(ctx, "bob", "2024-05-01")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestDailyLikes_CorruptValueIsMiss(t *testing.T) {
	ctx := context.Background()
	c, mr := setupCache(t)

	require.NoError(t, mr.Set("likes:daily:eve_2024-05-01", "NaN"))
	_, err := c.GetDailyLikes(ctx, "eve", "2024-05-01")
	assert.ErrorIs(t, err, cache.ErrMiss)
}
