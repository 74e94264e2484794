package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pix-bank/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const (
	idempotencyPrefix = "pixbank:idem:"
	reservationPrefix = "pixbank:idem-lock:"
)

// IdempotencyCache implements ports.IdempotencyCache using Redis. Completed
// responses live under one key and in-flight reservations under another, so
// a reservation never shadows a stored response.
type IdempotencyCache struct {
	client goredis.UniversalClient
}

// NewIdempotencyCache creates a new Redis-backed idempotency cache.
func NewIdempotencyCache(client goredis.UniversalClient) *IdempotencyCache {
	return &IdempotencyCache{client: client}
}

var _ ports.IdempotencyCache = (*IdempotencyCache)(nil)

// Get retrieves a cached response by idempotency key.
// Returns nil, nil if the key does not exist.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, idempotencyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}
	return val, nil
}

// Set stores a response with TTL and drops any reservation for the key.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, idempotencyPrefix+key, value, ttl)
		pipe.Del(ctx, reservationPrefix+key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}

// Reserve claims key for one in-flight request. It reports false when another
// request already holds the reservation.
func (c *IdempotencyCache) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := c.client.SetNX(ctx, reservationPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis idempotency reserve: %w", err)
	}
	return ok, nil
}

// Release drops a reservation without storing a response, letting the key be
// retried.
func (c *IdempotencyCache) Release(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, reservationPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis idempotency release: %w", err)
	}
	return nil
}
