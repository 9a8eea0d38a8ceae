package policies

import (
	"math/rand/v2"
	"slices"
)

// RRCache evicts a uniformly random item. Keys are kept in an
// index-addressable slice so a victim draw is O(1); removal swaps the last
// key into the vacated slot.
type RRCache[K comparable, V any] struct {
	items    map[K]*rrItem[V]
	keys     []K
	maxsize  int
	reserved int
}

type rrItem[V any] struct {
	value V
	slot  int
}

func NewRRCache[K comparable, V any](maxsize, capacity int) *RRCache[K, V] {
	return &RRCache[K, V]{
		items:    make(map[K]*rrItem[V], capacity),
		keys:     make([]K, 0, capacity),
		maxsize:  maxsize,
		reserved: capacity,
	}
}

// Insert inserts or updates the specified key-value pair. Inserting a new
// key into a full cache silently evicts a random item first.
func (c *RRCache[K, V]) Insert(key K, value V) (prev V, replaced, stored bool) {
	if item, ok := c.items[key]; ok {
		prev = item.value
		item.value = value
		return prev, true, true
	}

	// Verify size not exceeded
	if c.maxsize != 0 && len(c.items) == c.maxsize {
		c.PopItem()
	}

	c.keys = append(c.keys, key)
	c.items[key] = &rrItem[V]{value: value, slot: len(c.keys) - 1}

	return prev, false, true
}

// Get returns the value for specified key if it is present in the cache.
func (c *RRCache[K, V]) Get(key K) (V, bool) {
	item, ok := c.items[key]
	if !ok {
		var v V
		return v, false
	}

	return item.value, true
}

func (c *RRCache[K, V]) Peek(key K) (V, bool) {
	return c.Get(key)
}

func (c *RRCache[K, V]) Remove(key K) (V, bool) {
	item, ok := c.items[key]
	if !ok {
		var v V
		return v, false
	}
	c.removeSlot(key, item.slot)

	return item.value, true
}

// PopItem removes and returns a uniformly random pair.
func (c *RRCache[K, V]) PopItem() (key K, value V, ok bool) {
	if len(c.keys) == 0 {
		return key, value, false
	}
	key = c.keys[rand.IntN(len(c.keys))]
	item := c.items[key]
	c.removeSlot(key, item.slot)

	return key, item.value, true
}

func (c *RRCache[K, V]) Len() int { return len(c.items) }

func (c *RRCache[K, V]) MaxSize() int { return c.maxsize }

func (c *RRCache[K, V]) Capacity() int {
	return max(c.reserved, len(c.items))
}

func (c *RRCache[K, V]) Reserve(additional int) {
	want := len(c.items) + additional
	if want <= c.reserved {
		return
	}
	c.reserved = want
	c.keys = slices.Grow(c.keys, additional)
	c.reindex(c.reserved)
}

func (c *RRCache[K, V]) ShrinkToFit() {
	c.reserved = len(c.items)
	c.keys = slices.Clip(c.keys)
	c.reindex(c.reserved)
}

func (c *RRCache[K, V]) Clear(reuse bool) {
	if reuse {
		clear(c.items)
		c.keys = c.keys[:0]
		return
	}
	c.items = make(map[K]*rrItem[V])
	c.keys = nil
	c.reserved = 0
}

func (c *RRCache[K, V]) Dump() (keys []K, values []V) {
	keys = make([]K, len(c.keys))
	copy(keys, c.keys)
	values = make([]V, 0, len(keys))
	for _, key := range keys {
		values = append(values, c.items[key].value)
	}

	return keys, values
}

func (c *RRCache[K, V]) removeSlot(key K, slot int) {
	last := len(c.keys) - 1
	if slot != last {
		moved := c.keys[last]
		c.keys[slot] = moved
		c.items[moved].slot = slot
	}
	c.keys = c.keys[:last]
	delete(c.items, key)
}

func (c *RRCache[K, V]) reindex(capacity int) {
	items := make(map[K]*rrItem[V], capacity)
	for key, item := range c.items {
		items[key] = item
	}
	c.items = items
}
