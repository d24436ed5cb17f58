package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-pro/internal/apperror"
)

type redisRecords struct {
	client *redis.Client
	prefix string
}

func NewRedisRecordStore(client *redis.Client, prefix string) RecordStore {
	return &redisRecords{
		client: client,
		prefix: prefix,
	}
}

func (that *redisRecords) Load(ctx context.Context, key string) ([]byte, error) {
	response, err := that.client.Get(ctx, that.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrRecordNotFound, key)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get record %s: %w", key, err)
	}

	return response, nil
}

func (that *redisRecords) Save(ctx context.Context, key string, value []byte) error {
	if err := that.client.Set(ctx, that.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set record %s: %w", key, err)
	}

	return nil
}
