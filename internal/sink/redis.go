package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultRedisKey is the list messages are pushed onto by default.
	DefaultRedisKey   = "paylink:errors"
	redisWriteTimeout = 2 * time.Second
)

// Redis pushes messages onto a Redis list so several processes can share
// one collection point.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis builds a sink writing to key. An empty key means DefaultRedisKey.
func NewRedis(client *redis.Client, key string) (*Redis, error) {
	if client == nil {
		return nil, ErrMissingBackend
	}
	if key == "" {
		key = DefaultRedisKey
	}
	return &Redis{client: client, key: key}, nil
}

// WriteError appends the message to the tail of the list.
func (r *Redis) WriteError(message string) error {
	if message == "" {
		return ErrMissingMessage
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisWriteTimeout)
	defer cancel()
	if err := r.client.RPush(ctx, r.key, message).Err(); err != nil {
		return fmt.Errorf("push error message: %w", err)
	}
	return nil
}
