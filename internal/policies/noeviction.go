package policies

import "maps"

// NoEvictionCache is a bounded map core without a replacement policy:
// inserting a new key into a full cache is refused.
type NoEvictionCache[K comparable, V any] struct {
	items    map[K]V
	maxsize  int
	reserved int
}

func NewNoEvictionCache[K comparable, V any](maxsize, capacity int) *NoEvictionCache[K, V] {
	return &NoEvictionCache[K, V]{
		items:    make(map[K]V, capacity),
		maxsize:  maxsize,
		reserved: capacity,
	}
}

// Insert stores the pair unless the cache is full and the key is new.
// stored is false only in that refused case, with no mutation performed.
func (c *NoEvictionCache[K, V]) Insert(key K, value V) (prev V, replaced, stored bool) {
	if prev, replaced = c.items[key]; replaced {
		c.items[key] = value
		return prev, true, true
	}
	if c.maxsize != 0 && len(c.items) == c.maxsize {
		return prev, false, false
	}
	c.items[key] = value

	return prev, false, true
}

// Get returns the value for specified key if it is present in the cache.
func (c *NoEvictionCache[K, V]) Get(key K) (V, bool) {
	value, ok := c.items[key]
	return value, ok
}

func (c *NoEvictionCache[K, V]) Peek(key K) (V, bool) {
	return c.Get(key)
}

func (c *NoEvictionCache[K, V]) Remove(key K) (V, bool) {
	value, ok := c.items[key]
	if ok {
		delete(c.items, key)
	}

	return value, ok
}

// PopItem never succeeds: the policy has no eviction order to select from.
func (c *NoEvictionCache[K, V]) PopItem() (key K, value V, ok bool) {
	return key, value, false
}

func (c *NoEvictionCache[K, V]) Len() int { return len(c.items) }

func (c *NoEvictionCache[K, V]) MaxSize() int { return c.maxsize }

func (c *NoEvictionCache[K, V]) Capacity() int {
	return max(c.reserved, len(c.items))
}

func (c *NoEvictionCache[K, V]) Reserve(additional int) {
	want := len(c.items) + additional
	if want <= c.reserved {
		return
	}
	c.reserved = want
	items := make(map[K]V, c.reserved)
	maps.Copy(items, c.items)
	c.items = items
}

func (c *NoEvictionCache[K, V]) ShrinkToFit() {
	c.reserved = len(c.items)
	items := make(map[K]V, len(c.items))
	maps.Copy(items, c.items)
	c.items = items
}

func (c *NoEvictionCache[K, V]) Clear(reuse bool) {
	if reuse {
		clear(c.items)
		return
	}
	c.items = make(map[K]V)
	c.reserved = 0
}

func (c *NoEvictionCache[K, V]) Dump() (keys []K, values []V) {
	keys = make([]K, 0, len(c.items))
	values = make([]V, 0, len(c.items))
	for key, value := range c.items {
		keys = append(keys, key)
		values = append(values, value)
	}

	return keys, values
}
