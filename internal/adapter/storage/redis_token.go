package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/pos-backend/internal/core/domain"
)

const tokenKeyPrefix = "token:"

// RedisTokenStore keeps issued bearer tokens with a sliding-free TTL.
// A token absent from Redis is treated as expired.
type RedisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTokenStore(client *redis.Client, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{client: client, ttl: ttl}
}

func (r *RedisTokenStore) Save(ctx context.Context, token string, userID int64) error {
	return r.client.Set(ctx, tokenKeyPrefix+token, userID, r.ttl).Err()
}

func (r *RedisTokenStore) UserID(ctx context.Context, token string) (int64, error) {
	id, err := r.client.Get(ctx, tokenKeyPrefix+token).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrTokenNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	return r.client.Del(ctx, tokenKeyPrefix+token).Err()
}
