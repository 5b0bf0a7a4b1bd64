package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Redis is a Store backed by a Redis server, for deployments where the
// process is restarted per request and an in-process cache would never
// hit. TTL enforcement is delegated to the server; capacity is left to
// the server's own eviction policy.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to the given address and verifies the connection.
func NewRedis(ctx context.Context, addr, username, password string, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Redis{client: client, ttl: ttl}, nil
}

// Get returns the cached value, treating any Redis error as a miss.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("redis get failed, treating as miss")
		}
		return nil, false
	}
	return val, true
}

// Set stores the value with the configured TTL. Failures are logged and
// otherwise ignored; the cache is not correctness-critical.
func (r *Redis) Set(ctx context.Context, key string, value []byte) {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis set failed")
	}
}
