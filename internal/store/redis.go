package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces session keys in a shared Redis database.
const KeyPrefix = "interest-calculator:session:"

// Redis keeps session results in Redis with a sliding TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects lazily to the Redis server at addr.
func NewRedis(addr string, ttl time.Duration) *Redis {
	return NewRedisWithClient(redis.NewClient(&redis.Options{Addr: addr}), ttl)
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client connections.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) Get(ctx context.Context, id string) (calculator.Result, bool, error) {
	data, err := r.client.Get(ctx, KeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return calculator.Result{}, false, nil
	}
	if err != nil {
		return calculator.Result{}, false, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	res, err := decode(data)
	if err != nil {
		return calculator.Result{}, false, err
	}
	return res, true, nil
}

func (r *Redis) Put(ctx context.Context, id string, res calculator.Result) error {
	data, err := encode(res)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, KeyPrefix+id, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session %s: %w", id, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, KeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}
