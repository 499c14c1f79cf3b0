package cache

import (
	"fmt"
	"sync"
	"time"

	"league-tracker/internal/constants"
)

type entry[T any] struct {
	payload   T
	expiresAt time.Time
}

// Store is a process-wide, best-effort TTL cache. Expiry is checked lazily
// on read; entries past their TTL are treated as absent, never returned
// stale. Writes are idempotent full replacements of a key's entry, so
// last-writer-wins is fine.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	ttl     time.Duration
	now     func() time.Time
}

func New[T any](ttl time.Duration, now func() time.Time) *Store[T] {
	if now == nil {
		now = time.Now
	}
	return &Store[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		now:     now,
	}
}

// NewResponseCache builds the store guarding the aggregation path, with the
// fixed 300s TTL.
func NewResponseCache[T any]() *Store[T] {
	return New[T](constants.ResponseCacheTTL, time.Now)
}

func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	var zero T
	if !ok || !s.now().Before(e.expiresAt) {
		return zero, false
	}
	return e.payload, true
}

func (s *Store[T]) Put(key string, payload T) {
	s.mu.Lock()
	s.entries[key] = entry[T]{
		payload:   payload,
		expiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()
}

// Sweep drops expired entries to keep memory bounded. Optional; reads are
// already correct without it.
func (s *Store[T]) Sweep() {
	now := s.now()
	s.mu.Lock()
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
	s.mu.Unlock()
}

// Key builds the tuple key guarding one aggregation window.
func Key(riotID, region string, sampleSize int) string {
	return fmt.Sprintf("%s-%s-%d", riotID, region, sampleSize)
}
