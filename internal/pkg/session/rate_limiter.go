// internal/pkg/session/rate_limiter.go
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

// CheckLoginAttempt checks if a login attempt is allowed.
// Allows up to 5 attempts per ip+email within 15 minutes.
func (r *RateLimiter) CheckLoginAttempt(ctx context.Context, ip, email string) (bool, int64, error) {
	key := fmt.Sprintf("ratelimit:login:%s:%s", ip, email)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment login attempt: %w", err)
	}

	// Set expiration on first attempt
	if count == 1 {
		r.client.Expire(ctx, key, 15*time.Minute)
	}

	maxAttempts := int64(5)
	remaining := maxAttempts - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= maxAttempts, remaining, nil
}

// ResetLoginAttempts resets the login attempt counter.
func (r *RateLimiter) ResetLoginAttempts(ctx context.Context, ip, email string) error {
	key := fmt.Sprintf("ratelimit:login:%s:%s", ip, email)
	return r.client.Del(ctx, key).Err()
}

// GetRemainingAttempts returns remaining login attempts.
func (r *RateLimiter) GetRemainingAttempts(ctx context.Context, ip, email string) (int64, error) {
	key := fmt.Sprintf("ratelimit:login:%s:%s", ip, email)

	count, err := r.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 5, nil // Full attempts available
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get login attempts: %w", err)
	}

	remaining := int64(5) - count
	if remaining < 0 {
		remaining = 0
	}

	return remaining, nil
}
