package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	keyPrefix    = "lock:"
	retryBackoff = 25 * time.Millisecond
)

// Deletes the key only while it still carries our token, so an expired
// lease taken over by another instance is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
}

// NewRedis returns a lease-based lock shared by every instance using client.
func NewRedis(client *redis.Client, ttl, wait time.Duration) Locker {
	return &redisLocker{
		client: client,
		ttl:    ttl,
		wait:   wait,
	}
}

func (r *redisLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	waitCtx, cancel := withWait(ctx, r.wait)
	defer cancel()

	for {
		ok, err := r.client.SetNX(waitCtx, redisKey, token, r.ttl).Result()
		if err != nil && waitCtx.Err() == nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}

		if ok {
			break
		}

		select {
		case <-waitCtx.Done():
			return nil, waitError(waitCtx, ctx)
		case <-time.After(retryBackoff):
		}
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			c := context.WithoutCancel(ctx)

			if err := releaseScript.Run(c, r.client, []string{redisKey}, token).Err(); err != nil {
				log.Error().Err(err).Str("key", redisKey).Msg("failed to release lock")
			}
		})
	}, nil
}
