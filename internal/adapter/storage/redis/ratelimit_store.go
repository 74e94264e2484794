package redis

import (
	"context"
	"fmt"
	"time"

	"pix-bank/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "pixbank:ratelimit:"

// RateLimitStore implements ports.RateLimitStore with a fixed-window counter.
// The window opens on the first request for a key and closes when the key
// expires, so the Redis clock is the only clock involved.
type RateLimitStore struct {
	client goredis.UniversalClient
	now    func() time.Time
}

// NewRateLimitStore creates a new Redis-backed rate limit store.
func NewRateLimitStore(client goredis.UniversalClient) *RateLimitStore {
	return &RateLimitStore{client: client, now: time.Now}
}

var _ ports.RateLimitStore = (*RateLimitStore)(nil)

// Allow counts one request for key and reports whether it fits in limit.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	redisKey := rateLimitPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis rate limit incr: %w", err)
	}

	ttl := window
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return nil, fmt.Errorf("redis rate limit expire: %w", err)
		}
	} else {
		remainingTTL, err := s.client.PTTL(ctx, redisKey).Result()
		if err != nil {
			return nil, fmt.Errorf("redis rate limit ttl: %w", err)
		}
		// A key left without expiry would block forever.
		if remainingTTL < 0 {
			_ = s.client.Expire(ctx, redisKey, window).Err()
		} else {
			ttl = remainingTTL
		}
	}

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   s.now().Add(ttl).Unix(),
	}, nil
}
