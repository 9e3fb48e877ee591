package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type redisKVStore struct {
	rdb *redis.Client
}

func (s *redisKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set stores the value without expiry
func (s *redisKVStore) Set(ctx context.Context, key string, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}
