package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/muzz-matchmaking/internal/config"
	"github.com/oggyb/muzz-matchmaking/internal/utils/keys"
)

// ErrMiss is returned when a key is not cached.
var ErrMiss = errors.New("cache miss")

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// KeyForDailyLikes generates the Redis key for uid's like counter on day.
func (c *RedisCache) KeyForDailyLikes(uid, day string) string {
	return "likes:daily:" + keys.DailyCountKey(uid, day)
}

// GetDailyLikes returns the cached counter, or ErrMiss.
func (c *RedisCache) GetDailyLikes(ctx context.Context, uid, day string) (int, error) {
	val, err := c.Client.Get(ctx, c.KeyForDailyLikes(uid, day)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrMiss
	} else if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, ErrMiss
	}
	return n, nil
}

// SetDailyLikes caches the counter for ttl.
func (c *RedisCache) SetDailyLikes(ctx context.Context, uid, day string, count int, ttl time.Duration) error {
	return c.Client.Set(ctx, c.KeyForDailyLikes(uid, day), count, ttl).Err()
}

// InvalidateDailyLikes drops the cached counter so the next read hits the DB.
func (c *RedisCache) InvalidateDailyLikes(ctx context.Context, uid, day string) error {
	return c.Client.Del(ctx, c.KeyForDailyLikes(uid, day)).Err()
}
