package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process CounterStore for single-instance and dev
// deployments. It is NOT production safe on horizontally scaled serving:
// each instance would count independently. Use storage.FirestoreCounters
// there.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*record
	now     func() time.Time
}

type record struct {
	count   int
	resetAt time.Time
}

// NewMemoryStore creates an empty in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*record),
		now:     time.Now,
	}
}

// Hit implements CounterStore under a process-wide mutex.
func (s *MemoryStore) Hit(_ context.Context, key string, window time.Duration, ceiling int) (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rec, ok := s.records[key]
	if !ok || now.After(rec.resetAt) {
		s.records[key] = &record{count: 1, resetAt: now.Add(window)}
		return true, ceiling - 1, nil
	}

	if rec.count >= ceiling {
		return false, 0, nil
	}

	rec.count++
	return true, ceiling - rec.count, nil
}

// Peek implements CounterStore.
func (s *MemoryStore) Peek(_ context.Context, key string, ceiling int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok || s.now().After(rec.resetAt) {
		return ceiling, nil
	}
	remaining := ceiling - rec.count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
