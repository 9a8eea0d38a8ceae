package policies

import "container/list"

// LRUCache evicts the least recently used item first. Both Get and Insert
// of an existing key promote it to most recently used.
type LRUCache[K comparable, V any] struct {
	items     map[K]*list.Element
	evictList *list.List
	maxsize   int
	reserved  int
}

type lruItem[K comparable, V any] struct {
	key   K
	value V
}

func NewLRUCache[K comparable, V any](maxsize, capacity int) *LRUCache[K, V] {
	return &LRUCache[K, V]{
		items:     make(map[K]*list.Element, capacity),
		evictList: list.New(),
		maxsize:   maxsize,
		reserved:  capacity,
	}
}

// Insert inserts or updates the specified key-value pair. Inserting a new
// key into a full cache silently evicts the least recently used item first.
func (c *LRUCache[K, V]) Insert(key K, value V) (prev V, replaced, stored bool) {
	// Check for existing item
	if el, ok := c.items[key]; ok {
		c.evictList.MoveToFront(el)
		item := el.Value.(*lruItem[K, V])
		prev = item.value
		item.value = value
		return prev, true, true
	}

	// Verify size not exceeded
	if c.maxsize != 0 && len(c.items) == c.maxsize {
		c.PopItem()
	}

	c.items[key] = c.evictList.PushFront(&lruItem[K, V]{key: key, value: value})

	return prev, false, true
}

// Get returns the value for specified key if it is present in the cache.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var v V
		return v, false
	}
	c.evictList.MoveToFront(el)

	return el.Value.(*lruItem[K, V]).value, true
}

// Peek is Get without promoting the key.
func (c *LRUCache[K, V]) Peek(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var v V
		return v, false
	}

	return el.Value.(*lruItem[K, V]).value, true
}

func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var v V
		return v, false
	}
	item := el.Value.(*lruItem[K, V])
	c.removeElement(el)

	return item.value, true
}

// PopItem removes and returns the least recently used pair.
func (c *LRUCache[K, V]) PopItem() (key K, value V, ok bool) {
	el := c.evictList.Back()
	if el == nil {
		return key, value, false
	}
	item := el.Value.(*lruItem[K, V])
	c.removeElement(el)

	return item.key, item.value, true
}

func (c *LRUCache[K, V]) Len() int { return len(c.items) }

func (c *LRUCache[K, V]) MaxSize() int { return c.maxsize }

func (c *LRUCache[K, V]) Capacity() int {
	return max(c.reserved, len(c.items))
}

func (c *LRUCache[K, V]) Reserve(additional int) {
	want := len(c.items) + additional
	if want <= c.reserved {
		return
	}
	c.reserved = want
	c.reindex(c.reserved)
}

func (c *LRUCache[K, V]) ShrinkToFit() {
	c.reserved = len(c.items)
	c.reindex(c.reserved)
}

func (c *LRUCache[K, V]) Clear(reuse bool) {
	c.evictList.Init()
	if reuse {
		clear(c.items)
		return
	}
	c.items = make(map[K]*list.Element)
	c.reserved = 0
}

// Dump returns the content in recency order, least recently used first, so
// replaying it through Insert reproduces the same eviction order.
func (c *LRUCache[K, V]) Dump() (keys []K, values []V) {
	keys = make([]K, 0, len(c.items))
	values = make([]V, 0, len(c.items))
	for el := c.evictList.Back(); el != nil; el = el.Prev() {
		item := el.Value.(*lruItem[K, V])
		keys = append(keys, item.key)
		values = append(values, item.value)
	}

	return keys, values
}

func (c *LRUCache[K, V]) removeElement(el *list.Element) {
	item := c.evictList.Remove(el).(*lruItem[K, V])
	delete(c.items, item.key)
}

func (c *LRUCache[K, V]) reindex(capacity int) {
	items := make(map[K]*list.Element, capacity)
	for el := c.evictList.Front(); el != nil; el = el.Next() {
		items[el.Value.(*lruItem[K, V]).key] = el
	}
	c.items = items
}
