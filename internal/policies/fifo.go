package policies

import "container/list"

// FIFOCache evicts in insertion order: the queue front is the oldest
// survivor and the next victim. Re-inserting an existing key replaces the
// value without touching its queue position.
type FIFOCache[K comparable, V any] struct {
	items    map[K]*list.Element
	queue    *list.List
	maxsize  int
	reserved int
}

type fifoItem[K comparable, V any] struct {
	key   K
	value V
}

func NewFIFOCache[K comparable, V any](maxsize, capacity int) *FIFOCache[K, V] {
	return &FIFOCache[K, V]{
		items:    make(map[K]*list.Element, capacity),
		queue:    list.New(),
		maxsize:  maxsize,
		reserved: capacity,
	}
}

// Set inserts or updates the specified key-value pair. Inserting a new key
// into a full cache silently evicts the queue front first.
func (c *FIFOCache[K, V]) Insert(key K, value V) (prev V, replaced, stored bool) {
	if el, ok := c.items[key]; ok {
		item := el.Value.(*fifoItem[K, V])
		prev = item.value
		item.value = value
		return prev, true, true
	}

	// Verify size not exceeded
	if c.maxsize != 0 && len(c.items) == c.maxsize {
		c.PopItem()
	}

	c.items[key] = c.queue.PushBack(&fifoItem[K, V]{key: key, value: value})

	return prev, false, true
}

// Get returns the value for specified key if it is present in the cache.
func (c *FIFOCache[K, V]) Get(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var v V
		return v, false
	}

	return el.Value.(*fifoItem[K, V]).value, true
}

func (c *FIFOCache[K, V]) Peek(key K) (V, bool) {
	return c.Get(key)
}

func (c *FIFOCache[K, V]) Remove(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var v V
		return v, false
	}
	item := el.Value.(*fifoItem[K, V])
	c.removeElement(el)

	return item.value, true
}

// PopItem removes and returns the oldest surviving pair.
func (c *FIFOCache[K, V]) PopItem() (key K, value V, ok bool) {
	el := c.queue.Front()
	if el == nil {
		return key, value, false
	}
	item := el.Value.(*fifoItem[K, V])
	c.removeElement(el)

	return item.key, item.value, true
}

// First returns the key at position n from the front of the queue;
// n 0 is the next eviction victim.
func (c *FIFOCache[K, V]) First(n int) (key K, ok bool) {
	if n < 0 || n >= c.queue.Len() {
		return key, false
	}
	el := c.queue.Front()
	for ; n > 0; n-- {
		el = el.Next()
	}

	return el.Value.(*fifoItem[K, V]).key, true
}

// Last returns the most recently inserted key.
func (c *FIFOCache[K, V]) Last() (key K, ok bool) {
	el := c.queue.Back()
	if el == nil {
		return key, false
	}

	return el.Value.(*fifoItem[K, V]).key, true
}

func (c *FIFOCache[K, V]) Len() int { return len(c.items) }

func (c *FIFOCache[K, V]) MaxSize() int { return c.maxsize }

func (c *FIFOCache[K, V]) Capacity() int {
	return max(c.reserved, len(c.items))
}

func (c *FIFOCache[K, V]) Reserve(additional int) {
	want := len(c.items) + additional
	if want <= c.reserved {
		return
	}
	c.reserved = want
	c.reindex(c.reserved)
}

func (c *FIFOCache[K, V]) ShrinkToFit() {
	c.reserved = len(c.items)
	c.reindex(c.reserved)
}

func (c *FIFOCache[K, V]) Clear(reuse bool) {
	c.queue.Init()
	if reuse {
		clear(c.items)
		return
	}
	c.items = make(map[K]*list.Element)
	c.reserved = 0
}

// Dump returns the content in insertion order, next victim first.
func (c *FIFOCache[K, V]) Dump() (keys []K, values []V) {
	keys = make([]K, 0, len(c.items))
	values = make([]V, 0, len(c.items))
	for el := c.queue.Front(); el != nil; el = el.Next() {
		item := el.Value.(*fifoItem[K, V])
		keys = append(keys, item.key)
		values = append(values, item.value)
	}

	return keys, values
}

func (c *FIFOCache[K, V]) removeElement(el *list.Element) {
	item := c.queue.Remove(el).(*fifoItem[K, V])
	delete(c.items, item.key)
}

func (c *FIFOCache[K, V]) reindex(capacity int) {
	items := make(map[K]*list.Element, capacity)
	for el := c.queue.Front(); el != nil; el = el.Next() {
		items[el.Value.(*fifoItem[K, V]).key] = el
	}
	c.items = items
}
