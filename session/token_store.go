// Package session keeps the Redis-backed logout denylist. Tokens are
// stateless JWTs, so logout works by remembering the revoked JTI until the
// token would have expired anyway.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type TokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(rdb *redis.Client) *TokenStore { return &TokenStore{rdb: rdb} }

func key(jti string) string { return fmt.Sprintf("auth:revoked:%s", jti) }

// Revoke marks a token ID as logged out until its natural expiry.
func (s *TokenStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil // already expired, nothing to remember
	}
	return s.rdb.Set(ctx, key(jti), "1", ttl).Err()
}

// IsRevoked reports whether a token ID has been logged out.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
