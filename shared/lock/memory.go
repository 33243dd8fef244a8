package lock

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	sem  chan struct{}
	refs int
}

type memoryLocker struct {
	mu      sync.Mutex
	entries map[string]*entry
	wait    time.Duration
}

// NewMemory returns a keyed mutex valid within one process.
func NewMemory(wait time.Duration) Locker {
	return &memoryLocker{
		entries: map[string]*entry{},
		wait:    wait,
	}
}

func (m *memoryLocker) acquire(key string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		m.entries[key] = e
	}

	e.refs++

	return e
}

func (m *memoryLocker) release(key string, e *entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
	}
}

func (m *memoryLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	e := m.acquire(key)

	waitCtx, cancel := withWait(ctx, m.wait)
	defer cancel()

	select {
	case e.sem <- struct{}{}:
	case <-waitCtx.Done():
		m.release(key, e)

		return nil, waitError(waitCtx, ctx)
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			<-e.sem
			m.release(key, e)
		})
	}, nil
}
