package limiter

import (
	"context"
	"sync"
	"time"
)

// Memory is a process-local Store for single-instance development servers and tests.
type Memory struct {
	mu   sync.Mutex
	keys map[string]time.Time
	now  func() time.Time
}

// NewMemory constructs a Memory store. now may be nil to use the wall clock.
func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{keys: map[string]time.Time{}, now: now}
}

// SetNX implements Store.
func (m *Memory) SetNX(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if exp, ok := m.keys[key]; ok && now.Before(exp) {
		return false, nil
	}
	m.keys[key] = now.Add(ttl)
	return true, nil
}

// Purge drops expired keys and returns how many were removed.
func (m *Memory) Purge(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var n int64
	for k, exp := range m.keys {
		if !now.Before(exp) {
			delete(m.keys, k)
			n++
		}
	}
	return n, nil
}
