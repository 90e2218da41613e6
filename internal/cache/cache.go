package cache

import (
	"sync"
	"sync/atomic"
)

// Memo is a generic thread-safe memoization map.
// Values are created lazily by GetOrCreate and never evicted.
//
// Memo must not be copied after creation (has mutex).
type Memo[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V

	// Statistics (atomic for lock-free reads)
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates an empty memo map.
func New[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{
		entries: make(map[K]V),
	}
}

// Get retrieves a value from the memo.
// Returns (value, true) if found, (zero, false) otherwise.
// Get does not touch the hit/miss counters.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.entries[key]
	return v, ok
}

// GetOrCreate returns the memoized value for key, calling create on first use.
//
// The create function is called with the write lock held so that concurrent
// first access to the same key computes the value once. Keep create free of
// calls back into the same Memo.
func (m *Memo[K, V]) GetOrCreate(key K, create func() V) V {
	// Fast path: read lock
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		m.hits.Add(1)
		return v
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Re-check after acquiring write lock
	if v, ok := m.entries[key]; ok {
		m.hits.Add(1)
		return v
	}

	m.misses.Add(1)
	v = create()
	m.entries[key] = v
	return v
}

// Len returns the number of memoized entries.
func (m *Memo[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// Keys returns the memoized keys in unspecified order.
func (m *Memo[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

// Stats returns memo statistics.
func (m *Memo[K, V]) Stats() Stats {
	hits := m.hits.Load()
	misses := m.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:     m.Len(),
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate,
	}
}

// Stats contains memo statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits is the number of GetOrCreate calls served from the map.
	Hits uint64
	// Misses is the number of GetOrCreate calls that ran create.
	Misses uint64
	// HitRate is the hit rate 0.0 to 1.0.
	HitRate float64
}
