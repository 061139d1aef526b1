package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisTokenStore keeps issued token ids in Redis under
// access_token:<userID>:<tokenID> and refresh_token:<userID>:<tokenID>
// keys, expiring with the tokens themselves. The auth middleware checks
// the access key on every request, so deleting the keys revokes a
// session immediately.
type RedisTokenStore struct {
	client        *redis.Client
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewRedisTokenStore(client *redis.Client, accessExpiry, refreshExpiry time.Duration) *RedisTokenStore {
	return &RedisTokenStore{
		client:        client,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *RedisTokenStore) SaveTokens(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), refreshTokenID)

	if err := s.client.Set(ctx, accessKey, "valid", s.accessExpiry).Err(); err != nil {
		return err
	}
	return s.client.Set(ctx, refreshKey, "valid", s.refreshExpiry).Err()
}

// RevokeTokens deletes the keys for both token ids. The user id is not
// part of the lookup because logout only has the ids from the JWT claims.
func (s *RedisTokenStore) RevokeTokens(ctx context.Context, accessTokenID, refreshTokenID string) error {
	accessPattern := fmt.Sprintf("access_token:*:%s", accessTokenID)
	refreshPattern := fmt.Sprintf("refresh_token:*:%s", refreshTokenID)

	for _, pattern := range []string{accessPattern, refreshPattern} {
		keys, err := s.client.Keys(ctx, pattern).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *RedisTokenStore) RefreshTokenExists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), tokenID)
	count, err := s.client.Exists(ctx, refreshKey).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *RedisTokenStore) DeleteRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string) error {
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), tokenID)
	return s.client.Del(ctx, refreshKey).Err()
}
