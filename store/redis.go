package store

import (
	"context"
	"errors"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cpa_alerts_"

// RedisStore keeps one JSON blob per namespace key. Update serializes the
// read-modify-write through a short redislock lease so appends stay
// monotonically ordered even with multiple backend instances.
type RedisStore struct {
	client *redis.Client
	locker *redislock.Client
}

func NewRedisStore(client *redis.Client, locker *redislock.Client) *RedisStore {
	return &RedisStore{client: client, locker: locker}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	// No TTL: the namespace is durable until an explicit reset.
	return r.client.Set(ctx, keyPrefix+key, value, 0).Err()
}

func (r *RedisStore) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	lock, err := r.locker.Obtain(ctx, keyPrefix+key+":lock", 5*time.Second, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(50*time.Millisecond), 40),
	})
	if err != nil {
		return err
	}
	defer lock.Release(ctx)

	current, _, err := r.Get(ctx, key)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, next)
}

func (r *RedisStore) ResetAll(ctx context.Context) error {
	keys := make([]string, 0, len(Namespaces))
	for _, ns := range Namespaces {
		keys = append(keys, keyPrefix+ns)
	}
	return r.client.Del(ctx, keys...).Err()
}
