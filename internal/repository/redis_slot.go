package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/cartstate-demo/internal/port"
	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	Address  string
	Password string
	DB       int
}

type redisSlot struct {
	client *redis.Client
}

func NewRedisClient(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})
}

func NewRedisSlot(client *redis.Client) port.Slot {
	return &redisSlot{client: client}
}

func (s *redisSlot) Read(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("client.Get: %w", err)
	}

	return value, true, nil
}

// Write keeps the value without expiration.
func (s *redisSlot) Write(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}
