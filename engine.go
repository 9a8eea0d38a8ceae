package cache

import (
	"fmt"
	"unsafe"

	"github.com/moeryomenko/synx"
)

// engine couples a policy core with the per-instance exclusive guard.
// Every public operation holds the lock for its entire duration, so the
// storage table and the eviction metadata are always observed and mutated
// as one atomic unit; operations on one instance are linearized by lock
// acquisition order.
type engine[K comparable, V any] struct {
	core   replacementCacher[K, V]
	policy Policy
	lock   synx.Spinlock
}

// Set inserts or updates the specified key-value pair.
func (e *engine[K, V]) Set(key K, value V) error {
	_, _, err := e.Insert(key, value)
	return err
}

// Insert inserts or updates the specified key-value pair and reports the
// previously stored value, if any. Under NoEviction a full cache fails with
// ErrOverflow and stays unchanged; the evicting policies silently discard
// their victim instead.
func (e *engine[K, V]) Insert(key K, value V) (prev V, replaced bool, err error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	prev, replaced, stored := e.core.Insert(key, value)
	if !stored {
		var zero V
		return zero, false, ErrOverflow
	}

	return prev, replaced, nil
}

// Get returns the value for specified key if it is present in the cache.
func (e *engine[K, V]) Get(key K) (V, error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	value, ok := e.core.Get(key)
	if !ok {
		return value, ErrNotFound
	}

	return value, nil
}

// GetDefault returns the stored value, or def for a missing key.
func (e *engine[K, V]) GetDefault(key K, def V) V {
	e.lock.Lock()
	defer e.lock.Unlock()

	value, ok := e.core.Get(key)
	if !ok {
		return def
	}

	return value
}

// Peek is Get without disturbing the eviction order.
func (e *engine[K, V]) Peek(key K) (V, error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	value, ok := e.core.Peek(key)
	if !ok {
		return value, ErrNotFound
	}

	return value, nil
}

// Contains reports membership without disturbing the eviction order.
func (e *engine[K, V]) Contains(key K) bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	_, ok := e.core.Peek(key)
	return ok
}

// Remove removes item from cache by given key.
func (e *engine[K, V]) Remove(key K) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	if _, ok := e.core.Remove(key); !ok {
		return ErrNotFound
	}

	return nil
}

// Pop removes the key and returns its value, reporting presence.
func (e *engine[K, V]) Pop(key K) (V, bool) {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.core.Remove(key)
}

// PopDefault is Pop returning def for a missing key.
func (e *engine[K, V]) PopDefault(key K, def V) V {
	value, ok := e.Pop(key)
	if !ok {
		return def
	}

	return value
}

// SetDefault returns the stored value for the key, inserting def through
// the policy's normal insert path first when the key is absent.
func (e *engine[K, V]) SetDefault(key K, def V) (V, error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if value, ok := e.core.Get(key); ok {
		return value, nil
	}
	if _, _, stored := e.core.Insert(key, def); !stored {
		var zero V
		return zero, ErrOverflow
	}

	return def, nil
}

// PopItem removes and returns the policy's next eviction victim. It fails
// with ErrEmpty on an empty cache and with ErrUnsupported under NoEviction,
// which has no eviction order to select from.
func (e *engine[K, V]) PopItem() (K, V, error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.policy == NoEviction {
		var (
			key   K
			value V
		)
		return key, value, ErrUnsupported
	}

	key, value, ok := e.core.PopItem()
	if !ok {
		return key, value, ErrEmpty
	}

	return key, value, nil
}

// Drain removes up to n eviction victims, stopping early once the cache is
// empty, and returns the count actually removed.
func (e *engine[K, V]) Drain(n int) (int, error) {
	if n < 0 {
		return 0, errNegative("drain count")
	}

	e.lock.Lock()
	defer e.lock.Unlock()

	if e.policy == NoEviction {
		return 0, ErrUnsupported
	}

	removed := 0
	for removed < n {
		if _, _, ok := e.core.PopItem(); !ok {
			break
		}
		removed++
	}

	return removed, nil
}

// Update applies Insert for each entry in order. The first failure surfaces
// immediately; prior entries of the batch stay applied.
func (e *engine[K, V]) Update(entries ...Entry[K, V]) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	for _, entry := range entries {
		if _, _, stored := e.core.Insert(entry.Key, entry.Value); !stored {
			return ErrOverflow
		}
	}

	return nil
}

// UpdateMap is Update for mapping input; insertion order follows map
// iteration order.
func (e *engine[K, V]) UpdateMap(items map[K]V) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	for key, value := range items {
		if _, _, stored := e.core.Insert(key, value); !stored {
			return ErrOverflow
		}
	}

	return nil
}

// Keys returns a point-in-time copy of the keys in eviction order, victim
// first. The slice does not follow later mutations.
func (e *engine[K, V]) Keys() []K {
	e.lock.Lock()
	defer e.lock.Unlock()

	keys, _ := e.core.Dump()
	return keys
}

// Values returns a point-in-time copy of the values in eviction order.
func (e *engine[K, V]) Values() []V {
	e.lock.Lock()
	defer e.lock.Unlock()

	_, values := e.core.Dump()
	return values
}

// Items returns a point-in-time copy of the entries in eviction order.
func (e *engine[K, V]) Items() []Entry[K, V] {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.items()
}

// Len returns current size of cache.
func (e *engine[K, V]) Len() int {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.core.Len()
}

// MaxSize returns the entry bound, 0 meaning unbounded.
func (e *engine[K, V]) MaxSize() int {
	return e.core.MaxSize()
}

// Capacity returns the reserved entry count. Go maps do not expose their
// bucket capacity, so this is the tracked reservation floor: at least this
// many entries fit before the reservation grows.
func (e *engine[K, V]) Capacity() int {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.core.Capacity()
}

// Reserve pre-reserves storage for at least additional more entries.
func (e *engine[K, V]) Reserve(additional int) error {
	if additional < 0 {
		return errNegative("reserve")
	}

	e.lock.Lock()
	defer e.lock.Unlock()

	e.core.Reserve(additional)
	return nil
}

// ShrinkToFit releases reserved space down to the current size. Stored
// entries are never touched.
func (e *engine[K, V]) ShrinkToFit() {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.core.ShrinkToFit()
}

// Clear empties the cache. With reuse the reserved storage is kept for
// re-population, otherwise it is released.
func (e *engine[K, V]) Clear(reuse bool) {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.core.Clear(reuse)
}

// IsFull reports len == maxsize; always false when unbounded.
func (e *engine[K, V]) IsFull() bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.core.MaxSize() != 0 && e.core.Len() == e.core.MaxSize()
}

// IsEmpty reports len == 0.
func (e *engine[K, V]) IsEmpty() bool {
	return e.Len() == 0
}

// MemSize estimates the memory held by the cache from its reserved
// capacity and element sizes, in bytes.
func (e *engine[K, V]) MemSize() uintptr {
	e.lock.Lock()
	defer e.lock.Unlock()

	var (
		key   K
		value V
	)
	n := uintptr(e.core.Capacity())

	return n*unsafe.Sizeof(key) + n*unsafe.Sizeof(value) + unsafe.Sizeof(*e)
}

// Policy returns the eviction policy of the instance.
func (e *engine[K, V]) Policy() Policy {
	return e.policy
}

// Export captures maxsize, capacity and all entries in eviction order,
// sufficient for Restore to rebuild an equal instance.
func (e *engine[K, V]) Export() Snapshot[K, V] {
	e.lock.Lock()
	defer e.lock.Unlock()

	return Snapshot[K, V]{
		Policy:   e.policy,
		Maxsize:  e.core.MaxSize(),
		Capacity: e.core.Capacity(),
		Entries:  e.items(),
	}
}

func (e *engine[K, V]) String() string {
	e.lock.Lock()
	defer e.lock.Unlock()

	return fmt.Sprintf("<cache.%s len=%d maxsize=%d capacity=%d>",
		e.policy, e.core.Len(), e.core.MaxSize(), e.core.Capacity())
}

// items must be called with the lock held.
func (e *engine[K, V]) items() []Entry[K, V] {
	keys, values := e.core.Dump()
	entries := make([]Entry[K, V], len(keys))
	for i := range keys {
		entries[i] = Entry[K, V]{Key: keys[i], Value: values[i]}
	}

	return entries
}
