// Package lock serializes work per key. Booking creation holds the lock of
// its slot while it scans for collisions and appends, so two requests for
// the same slot can never both pass the collision check.
package lock

//go:generate go run go.uber.org/mock/mockgen -source=./lock.go -destination=./mocks/lock_mock.go -package=mocks

import (
	"bloom/config"
	"bloom/shared/constant"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ErrTimeout is returned when a lock could not be taken within the wait limit.
var ErrTimeout = errors.New("timed out waiting for lock")

// Unlock releases a held lock. It is safe to call more than once.
type Unlock func()

type Locker interface {
	Lock(ctx context.Context, key string) (Unlock, error)
}

// New returns the locker selected by BOOKING_LOCK_DRIVER.
func New(cfg *config.Config, client *redis.Client) Locker {
	wait := time.Duration(cfg.Booking.Lock.WaitSeconds) * time.Second

	switch strings.ToLower(cfg.Booking.Lock.Driver) {
	case constant.LockDriverMemory:
		log.Info().Msg("Using in-process slot locks")

		return NewMemory(wait)
	default:
		ttl := time.Duration(cfg.Booking.Lock.TTLSeconds) * time.Second

		return NewRedis(client, ttl, wait)
	}
}

func withWait(ctx context.Context, wait time.Duration) (context.Context, context.CancelFunc) {
	if wait <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, wait)
}

func waitError(ctx, parent context.Context) error {
	if parent.Err() != nil {
		return parent.Err() //nolint:wrapcheck
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}

	return ctx.Err() //nolint:wrapcheck
}
