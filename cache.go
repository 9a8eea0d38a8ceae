package cache

import (
	"fmt"
	"reflect"
)

// Entry is a key-value pair.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// BaseCache is common interface of cache: every eviction policy provides
// the same generic operations. Policy-specific extras, like FIFOCache's
// First and Last, live on the concrete types.
type BaseCache[K comparable, V any] interface {
	// Set inserts or updates the specified key-value pair.
	Set(key K, value V) error
	// Insert is Set reporting the previously stored value, if any.
	Insert(key K, value V) (prev V, replaced bool, err error)
	// Get returns the value for specified key if it is present in the cache.
	Get(key K) (V, error)
	// GetDefault returns the stored value, or def for a missing key.
	GetDefault(key K, def V) V
	// Peek is Get without disturbing the eviction order.
	Peek(key K) (V, error)
	// Contains reports membership without disturbing the eviction order.
	Contains(key K) bool
	// Remove removes item from cache by given key.
	Remove(key K) error
	// Pop removes the key and returns its value, reporting presence.
	Pop(key K) (V, bool)
	// PopDefault is Pop returning def for a missing key.
	PopDefault(key K, def V) V
	// SetDefault returns the stored value, inserting def first when absent.
	SetDefault(key K, def V) (V, error)
	// PopItem removes and returns the policy's next eviction victim.
	PopItem() (K, V, error)
	// Drain removes up to n victims and returns the count removed.
	Drain(n int) (int, error)
	// Update applies Insert for each entry in order; the first failure
	// surfaces immediately with the prior entries already applied.
	Update(entries ...Entry[K, V]) error
	// UpdateMap is Update for mapping input.
	UpdateMap(items map[K]V) error
	// Keys returns a point-in-time copy of the keys in eviction order.
	Keys() []K
	// Values returns a point-in-time copy of the values in eviction order.
	Values() []V
	// Items returns a point-in-time copy of the entries in eviction order.
	Items() []Entry[K, V]
	// Len returns current size of cache.
	Len() int
	// MaxSize returns the entry bound, 0 meaning unbounded.
	MaxSize() int
	// Capacity returns the reserved entry count.
	Capacity() int
	// Reserve grows the reservation for at least additional more entries.
	Reserve(additional int) error
	// ShrinkToFit releases reserved space down to the current size.
	ShrinkToFit()
	// Clear empties the cache, retaining reserved storage when reuse is set.
	Clear(reuse bool)
	// IsFull reports len == maxsize; always false when unbounded.
	IsFull() bool
	// IsEmpty reports len == 0.
	IsEmpty() bool
	// MemSize estimates the memory held by the cache, in bytes.
	MemSize() uintptr
	// Policy returns the eviction policy of the instance.
	Policy() Policy
	// Export captures the full state for Restore.
	Export() Snapshot[K, V]

	fmt.Stringer
}

var (
	_ BaseCache[int, any] = (*Cache[int, any])(nil)
	_ BaseCache[int, any] = (*FIFOCache[int, any])(nil)
	_ BaseCache[int, any] = (*RRCache[int, any])(nil)
	_ BaseCache[int, any] = (*LRUCache[int, any])(nil)
	_ BaseCache[int, any] = (*LFUCache[int, any])(nil)
)

// New returns cache with selected eviction policy.
func New[K comparable, V any](maxsize int, policy Policy, opts ...Option[K, V]) (BaseCache[K, V], error) {
	switch policy {
	case NoEviction:
		return NewCache(maxsize, opts...)
	case FIFO:
		return NewFIFOCache(maxsize, opts...)
	case RR:
		return NewRRCache(maxsize, opts...)
	case LRU:
		return NewLRUCache(maxsize, opts...)
	case LFU:
		return NewLFUCache(maxsize, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown eviction policy %d", ErrInvalidArgument, int(policy))
	}
}

// Equal reports whether two caches share eviction policy, maxsize and
// key-value content. Entry order never participates, FIFO included: this is
// content equality, not sequence equality.
func Equal[K comparable, V any](a, b BaseCache[K, V]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Policy() != b.Policy() || a.MaxSize() != b.MaxSize() {
		return false
	}

	return reflect.DeepEqual(itemsMap(a.Items()), itemsMap(b.Items()))
}

func itemsMap[K comparable, V any](entries []Entry[K, V]) map[K]V {
	m := make(map[K]V, len(entries))
	for _, entry := range entries {
		m[entry.Key] = entry.Value
	}

	return m
}
