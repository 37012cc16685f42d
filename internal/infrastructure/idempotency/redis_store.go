package idempotency

import (
	"context"
	"time"

	"crm_pipeline/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pipeline:idempotency:"

// RedisStore records processed command keys in Redis with a TTL. Keys outlive
// a process restart and are visible to any process sharing the Redis, but each
// process keeps its own in-memory board, so a replay only protects the board of
// the process that accepted the key.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IIdempotencyStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(k string) string {
	return keyPrefix + k
}

// Add records the key if it does not already exist. It returns true when the
// key was newly added.
func (s *RedisStore) Add(ctx context.Context, key string) (bool, error) {
	return s.client.SetNX(ctx, s.key(key), 1, s.ttl).Result()
}

// Remove deletes a previously recorded key so a failed command may be retried.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}
