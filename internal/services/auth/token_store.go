package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrTokenNotFound = errors.New("auth: refresh token not found or expired")

// TokenStore хранит выданные refresh-токены.
type TokenStore interface {
	Save(ctx context.Context, token, uid string, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

const refreshKeyPrefix = "shiftsync:refresh:"

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Save(ctx context.Context, token, uid string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKeyPrefix+token, uid, ttl).Err()
}

func (s *redisTokenStore) Lookup(ctx context.Context, token string) (string, error) {
	uid, err := s.client.Get(ctx, refreshKeyPrefix+token).Result()
	if err == redis.Nil {
		return "", ErrTokenNotFound
	}
	return uid, err
}

func (s *redisTokenStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, refreshKeyPrefix+token).Err()
}
