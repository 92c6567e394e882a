package token

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const activeKeyPrefix = "token:active:"

// RedisStore answers admission checks against the token keys maintained
// by the queueing service. A caller is admitted while its token id exists
// under the active prefix; the issuer owns writing and expiring the keys.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) IsActive(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	n, err := s.client.Exists(ctx, activeKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("token lookup: %w", err)
	}
	return n > 0, nil
}
