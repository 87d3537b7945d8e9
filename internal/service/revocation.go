package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Token revocation list. Logout on a stateless JWT is otherwise a pure
// client-side convention; when Redis is available we additionally park
// the token's jti until its natural expiry so a discarded token cannot
// be replayed. With no Redis configured every function degrades to the
// conventional behavior.

func RevokeToken(ctx context.Context, rdb *redis.Client, jti string, ttl time.Duration) error {
	if rdb == nil || ttl <= 0 {
		return nil
	}

	key := fmt.Sprintf("revoked_token:%s", jti)
	if err := rdb.Set(ctx, key, "revoked", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token revocation in redis: %w", err)
	}

	return nil
}

func IsTokenRevoked(ctx context.Context, rdb *redis.Client, jti string) (bool, error) {
	if rdb == nil {
		return false, nil
	}

	key := fmt.Sprintf("revoked_token:%s", jti)
	n, err := rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation in redis: %w", err)
	}

	return n > 0, nil
}
