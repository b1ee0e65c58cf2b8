package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	DefaultDailyLimit = 100
	counterTTL        = 48 * time.Hour
)

//go:generate mockgen -destination=../mocks/notification.go -package=mocks github.com/neighborly/neighborly-api/notification Limiter,Pusher,Messenger

// Limiter reserves one of the daily notification slots of a user. Release gives back
// a slot whose notification was never stored.
type Limiter interface {
	Allow(ctx context.Context, userID string, now time.Time) (bool, error)
	Release(ctx context.Context, userID string, now time.Time) error
}

// unlimited lets every notification through
type unlimited struct{}

func (unlimited) Allow(context.Context, string, time.Time) (bool, error) { return true, nil }

func (unlimited) Release(context.Context, string, time.Time) error { return nil }

// RedisLimiter counts notifications per user and UTC day
type RedisLimiter struct {
	client *redis.Client
	limit  int64
}

func NewRedisLimiter(client *redis.Client, limit int) *RedisLimiter {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	return &RedisLimiter{client: client, limit: int64(limit)}
}

func dailyKey(userID string, now time.Time) string {
	return fmt.Sprintf("neighborly:notification:%s:%s", userID, now.UTC().Format("20060102"))
}

// Allow counts the slot and reports whether it is still within the daily limit
func (l *RedisLimiter) Allow(ctx context.Context, userID string, now time.Time) (bool, error) {
	key := dailyKey(userID, now)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, counterTTL)
		return nil
	})
	if err != nil {
		return false, err
	}

	return incr.Val() <= l.limit, nil
}

// Release decrements the counter of the day of now, never below zero
func (l *RedisLimiter) Release(ctx context.Context, userID string, now time.Time) error {
	key := dailyKey(userID, now)

	n, err := l.client.Decr(ctx, key).Result()
	if err != nil {
		return err
	}
	if n <= 0 {
		return l.client.Del(ctx, key).Err()
	}
	return nil
}

// Count returns how many notifications the user received on the day of now
func (l *RedisLimiter) Count(ctx context.Context, userID string, now time.Time) (int64, error) {
	n, err := l.client.Get(ctx, dailyKey(userID, now)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}
