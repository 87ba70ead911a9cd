package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores the snapshot under <prefix><key> with no expiry
type RedisSlot struct {
	client *redis.Client
	prefix string
	owned  bool
}

// NewRedisSlot wraps an existing client. The caller keeps ownership of it.
func NewRedisSlot(client *redis.Client, prefix string) (*RedisSlot, error) {
	if client == nil {
		return nil, ErrNoRedisClient
	}
	return &RedisSlot{client: client, prefix: prefix}, nil
}

// DialRedisSlot opens a client for opts and verifies the connection
func DialRedisSlot(ctx context.Context, opts *redis.Options, prefix string) (*RedisSlot, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisSlot{client: client, prefix: prefix, owned: true}, nil
}

func (r *RedisSlot) redisKey(key string) string {
	return r.prefix + key
}

func (r *RedisSlot) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSlotEmpty
		}
		return nil, err
	}
	return data, nil
}

func (r *RedisSlot) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.redisKey(key), value, 0).Err()
}

// Close closes the client only if the slot dialed it
func (r *RedisSlot) Close() error {
	if !r.owned {
		return nil
	}
	return r.client.Close()
}
