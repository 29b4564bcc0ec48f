package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores each key as a plain Redis string. Blobs are small
// (whole-collection JSON), so no TTL or chunking applies.
type RedisBackend struct {
	client *redis.Client
}

// NewRedisBackend connects to Redis and verifies the connection with a ping.
func NewRedisBackend(addr, password string, db int) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("%w: connecting to redis at %s: %v", ErrStorageError, addr, err)
	}
	return &RedisBackend{client: client}, nil
}

// Get reads the blob stored for key.
func (b *RedisBackend) Get(key string) ([]byte, error) {
	data, err := b.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: getting key %s: %v", ErrStorageError, key, err)
	}
	return data, nil
}

// Set writes the blob for key with no expiry.
func (b *RedisBackend) Set(key string, value []byte) error {
	if err := b.client.Set(context.Background(), key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: setting key %s: %v", ErrStorageError, key, err)
	}
	return nil
}

// Remove deletes the blob for key. Removing an absent key is a no-op.
func (b *RedisBackend) Remove(key string) error {
	if err := b.client.Del(context.Background(), key).Err(); err != nil {
		return fmt.Errorf("%w: removing key %s: %v", ErrStorageError, key, err)
	}
	return nil
}

// Close releases the client connection.
func (b *RedisBackend) Close() error {
	return b.client.Close()
}
