package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// attemptWindow is how long failed attempts are held against an address.
const attemptWindow = 15 * time.Minute

// LoginLimiter counts failed login attempts per email address in Redis.
// Key format: login_attempts:<lowercased email>
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
}

// NewLoginLimiter creates a LoginLimiter blocking an address after
// maxAttempts consecutive failures within the attempt window.
func NewLoginLimiter(client *redis.Client, maxAttempts int) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts}
}

// Blocked reports whether the address has exhausted its attempts.
func (l *LoginLimiter) Blocked(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limiter check: %w", err)
	}
	return n >= l.maxAttempts, nil
}

// RecordFailure counts one failed attempt and refreshes the window.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, attemptWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("login limiter record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login_attempts:" + strings.ToLower(email)
}
