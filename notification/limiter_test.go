package notification

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T, limit int) (*RedisLimiter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLimiter(client, limit), mr
}

func TestRedisLimiterCapsPerDay(t *testing.T) {
	l, _ := newTestLimiter(t, 3)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "u1", now)
		assert.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.Allow(ctx, "u1", now)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "u2", now)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Allow(ctx, "u1", now.Add(2*time.Hour))
	assert.NoError(t, err)
	assert.True(t, ok, "a new UTC day starts a new counter")

	n, err := l.Count(ctx, "u1", now)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestRedisLimiterKeysExpire(t *testing.T) {
	l, mr := newTestLimiter(t, 1)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	_, err := l.Allow(ctx, "u1", now)
	assert.NoError(t, err)
	assert.True(t, mr.Exists(dailyKey("u1", now)))

	mr.FastForward(counterTTL + time.Second)
	assert.False(t, mr.Exists(dailyKey("u1", now)))

	n, err := l.Count(ctx, "u1", now)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestNewRedisLimiterDefaultLimit(t *testing.T) {
	l, _ := newTestLimiter(t, 0)
	assert.Equal(t, int64(DefaultDailyLimit), l.limit)
}

func TestRedisLimiterRelease(t *testing.T) {
	l, mr := newTestLimiter(t, 1)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	ok, err := l.Allow(ctx, "u1", now)
	assert.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, l.Release(ctx, "u1", now))
	assert.False(t, mr.Exists(dailyKey("u1", now)))

	ok, err = l.Allow(ctx, "u1", now)
	assert.NoError(t, err)
	assert.True(t, ok, "a released slot can be used again")

	assert.NoError(t, l.Release(ctx, "u2", now))
	n, err := l.Count(ctx, "u2", now)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
