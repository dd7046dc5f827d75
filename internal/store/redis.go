package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKV backs the store with a redis instance, for deployments where the
// data should outlive the host. Values are still whole-collection JSON
// blobs; redis is only the byte transport.
type RedisKV struct {
	rdb *redis.Client
}

const redisOpTimeout = 5 * time.Second

func NewRedisKV(addr, password string, db int) *RedisKV {
	return &RedisKV{
		rdb: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
	}
}

// Ping verifies the connection at startup.
func (r *RedisKV) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *RedisKV) Get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	b, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *RedisKV) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	return r.rdb.Set(ctx, key, value, 0).Err()
}

func (r *RedisKV) Remove(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	return r.rdb.Del(ctx, key).Err()
}
