// Package cache provides bounded in-memory key-value stores with expiry.
package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type item[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is an LRU cache whose entries expire after a per-entry TTL. The
// underlying LRU also evicts anything older than the default TTL.
type Store[V any] struct {
	mu         sync.Mutex
	lru        *expirable.LRU[string, item[V]]
	defaultTTL time.Duration
	now        func() time.Time
}

// New creates a Store holding at most size entries. Entries set with a zero
// TTL live for defaultTTL.
func New[V any](size int, defaultTTL time.Duration) *Store[V] {
	if size <= 0 {
		size = 1024
	}
	return &Store[V]{
		lru:        expirable.NewLRU[string, item[V]](size, nil, defaultTTL),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get returns the value for key if present and not expired.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.lru.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	if !it.expiresAt.IsZero() && !s.now().Before(it.expiresAt) {
		s.lru.Remove(key)
		var zero V
		return zero, false
	}
	return it.value, true
}

// Set stores v under key. A ttl of 0 uses the store default; a ttl longer
// than the default is capped by it.
func (s *Store[V]) Set(key string, v V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lru.Add(key, item[V]{value: v, expiresAt: expiresAt})
}

// Flush removes every entry.
func (s *Store[V]) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lru.Purge()
}

// Len returns the number of entries, including ones not yet reaped.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lru.Len()
}
