package ratelimit

import (
	"context"
	"testing"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisWindowFailsOpen(t *testing.T) {
	// Unreachable counter store: the limiter must admit rather than
	// take the chat endpoint down.
	client := redisv9.NewClient(&redisv9.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	defer client.Close()

	w := NewRedisWindow(client, 10, time.Minute)
	assert.True(t, w.Allow(context.Background(), "1.2.3.4"))
}

func TestRedisWindowBucketsByWindow(t *testing.T) {
	w := NewRedisWindow(nil, 10, time.Minute)

	// Aligned to a window boundary so the in-window probe stays put.
	base := time.Unix(1_699_999_980, 0)
	w.now = func() time.Time { return base }
	first := base.UnixMilli() / w.window.Milliseconds()

	w.now = func() time.Time { return base.Add(59 * time.Second) }
	sameWindow := w.now().UnixMilli() / w.window.Milliseconds()

	w.now = func() time.Time { return base.Add(61 * time.Second) }
	nextWindow := w.now().UnixMilli() / w.window.Milliseconds()

	assert.Equal(t, first, sameWindow, "same window must share a counter key")
	assert.NotEqual(t, first, nextWindow, "elapsed window must roll the counter key")
}
