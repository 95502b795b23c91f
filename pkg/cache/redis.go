package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Cache backed by a Redis server, for sharing memoized
// schedules across processes.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to the Redis server at addr (host:port) and verifies
// the connection. Entries expire after 24 hours.
func NewRedis(addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Redis{client: client, ttl: 24 * time.Hour}, nil
}

func (r *Redis) Get(key string) (string, bool) {
	value, err := r.client.Get(context.Background(), key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

func (r *Redis) Set(key, value string) error {
	return r.client.Set(context.Background(), key, value, r.ttl).Err()
}

// Close releases the underlying client connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
