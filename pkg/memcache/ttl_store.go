// pkg/memcache/ttl_store.go
package memcache

import (
	"sync"
	"time"
)

// maxEntries bounds the store; an expired-entry sweep runs once the map
// grows past it.
const maxEntries = 10000

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is a process-wide TTL cache safe for concurrent readers and
// writers. Entries lapse after their TTL; there is no explicit
// invalidation API.
type Store[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
}

func NewStore[V any]() *Store[V] {
	return &Store[V]{
		data: make(map[string]entry[V]),
	}
}

func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (s *Store[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = entry[V]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}

	if len(s.data) > maxEntries {
		now := time.Now()
		for k, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
