package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// RedisWindow keeps the fixed-window counters in Redis so horizontally
// scaled instances share one budget per client. Counter keys carry the
// window index, so expiry doubles as the reset.
type RedisWindow struct {
	client *redisv9.Client
	max    int
	window time.Duration
	now    func() time.Time
}

func NewRedisWindow(client *redisv9.Client, max int, window time.Duration) *RedisWindow {
	return &RedisWindow{
		client: client,
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// Allow fails open: a broken counter store must not take the chat
// endpoint down with it.
func (w *RedisWindow) Allow(ctx context.Context, key string) bool {
	bucket := w.now().UnixMilli() / w.window.Milliseconds()
	counterKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket)

	count, err := w.client.Incr(ctx, counterKey).Result()
	if err != nil {
		log.Printf("rate limit counter failed, allowing request: %v", err)
		return true
	}
	if count == 1 {
		if err := w.client.Expire(ctx, counterKey, w.window).Err(); err != nil {
			log.Printf("rate limit expire failed: %v", err)
		}
	}
	return count <= int64(w.max)
}
