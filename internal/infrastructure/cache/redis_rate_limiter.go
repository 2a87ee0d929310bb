package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRateLimitPrefix = "ffb:ratelimit:"

// RedisRateLimiter counts hits in fixed windows shared by every replica.
// Each window is one INCR'd key that expires with the window.
type RedisRateLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	length time.Duration
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client, prefix string, limit int, length time.Duration) *RedisRateLimiter {
	if prefix == "" {
		prefix = defaultRateLimitPrefix
	}
	return &RedisRateLimiter{client: client, prefix: prefix, limit: limit, length: length, now: time.Now}
}

func (l *RedisRateLimiter) Limit() int { return l.limit }

// Allow increments the current window's counter
func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, int, error) {
	slot := l.now().UnixNano() / int64(l.length)
	windowKey := l.prefix + key + ":" + strconv.FormatInt(slot, 10)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, windowKey)
		pipe.PExpire(ctx, windowKey, l.length)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("rate limit %s: %w", key, err)
	}

	hits := int(incr.Val())
	if hits > l.limit {
		return false, 0, nil
	}
	return true, l.limit - hits, nil
}
