// Package cache provides the memo map behind the basis coefficient tables.
//
// # Memo[K, V]
//
// A thread-safe map that computes each value once, on first request, and
// keeps it for the lifetime of the Memo. There is no eviction: keys are
// expected to have small cardinality (segment counts, curve degrees).
//
//	m := cache.New[int, []float64]()
//	table := m.GetOrCreate(16, func() []float64 { return build(16) })
//
// # Thread Safety
//
// Memo is safe for concurrent use. Concurrent first access to the same key
// runs create exactly once. Memo must not be copied after creation.
package cache
