package cache

import "github.com/moeryomenko/cachebox/internal/policies"

// replacementCacher is internal common interface of policy cores. The
// engine drives every public operation through this method set; the core
// keeps the storage table and its eviction metadata consistent on its own.
type replacementCacher[K comparable, V any] interface {
	// Insert inserts or updates the specified key-value pair. stored is
	// false when a no-eviction core refuses a new key.
	Insert(key K, value V) (prev V, replaced, stored bool)
	// Get returns the value for specified key if it is present in the cache.
	Get(key K) (V, bool)
	// Peek is Get without disturbing the eviction order.
	Peek(key K) (V, bool)
	// Remove removes item from cache by given key.
	Remove(key K) (V, bool)
	// PopItem removes and returns the policy's next eviction victim.
	PopItem() (K, V, bool)
	// Len returns current size of cache.
	Len() int
	// MaxSize returns the entry bound, 0 meaning unbounded.
	MaxSize() int
	// Capacity returns the reserved entry count.
	Capacity() int
	// Reserve grows the reservation for at least additional more entries.
	Reserve(additional int)
	// ShrinkToFit releases reserved space down to the current size.
	ShrinkToFit()
	// Clear empties the cache, retaining storage when reuse is set.
	Clear(reuse bool)
	// Dump returns all entries in the policy's eviction order, victim first.
	Dump() (keys []K, values []V)
}

// dummy test for policies.
var (
	_ replacementCacher[int, any] = (*policies.NoEvictionCache[int, any])(nil)
	_ replacementCacher[int, any] = (*policies.FIFOCache[int, any])(nil)
	_ replacementCacher[int, any] = (*policies.RRCache[int, any])(nil)
	_ replacementCacher[int, any] = (*policies.LRUCache[int, any])(nil)
	_ replacementCacher[int, any] = (*policies.LFUCache[int, any])(nil)
)
