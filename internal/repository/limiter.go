package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dailyWindow = 24 * time.Hour

// DailyLimiter ограничивает число жалоб от одного пользователя за сутки
type DailyLimiter struct {
	redisClient *redis.Client
	prefix      string
	limit       int64
}

func NewDailyLimiter(redisClient *redis.Client, prefix string, limit int) *DailyLimiter {
	return &DailyLimiter{
		redisClient: redisClient,
		prefix:      prefix,
		limit:       int64(limit),
	}
}

// Allow увеличивает счетчик пользователя и сообщает, уложился ли он в лимит.
// При отказе возвращается время до сброса окна.
func (l *DailyLimiter) Allow(ctx context.Context, userID string) (bool, time.Duration, error) {
	if l.limit <= 0 {
		return true, 0, nil
	}
	key := l.prefix + ":" + userID

	count, err := l.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment rate counter: %w", err)
	}
	// TTL ставится только при первом инкременте, чтобы окно не сдвигалось
	if count == 1 {
		if err := l.redisClient.Expire(ctx, key, dailyWindow).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to set rate counter ttl: %w", err)
		}
	}

	if count > l.limit {
		retryAfter, err := l.redisClient.TTL(ctx, key).Result()
		if err != nil || retryAfter < 0 {
			retryAfter = dailyWindow
		}
		return false, retryAfter, nil
	}
	return true, 0, nil
}
