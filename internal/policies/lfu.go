package policies

import "container/list"

// LFUCache evicts the least frequently used item first. Frequencies are
// kept as an ascending list of buckets; the front bucket always exists and
// holds items that were never read back. Ties inside a bucket are broken
// arbitrarily.
type LFUCache[K comparable, V any] struct {
	items    map[K]*lfuItem[K, V]
	freqList *list.List
	maxsize  int
	reserved int
}

type lfuItem[K comparable, V any] struct {
	key         K
	value       V
	freqElement *list.Element
}

type freqEntry[K comparable, V any] struct {
	freq  uint
	items map[*lfuItem[K, V]]struct{}
}

func NewLFUCache[K comparable, V any](maxsize, capacity int) *LFUCache[K, V] {
	cache := &LFUCache[K, V]{
		items:    make(map[K]*lfuItem[K, V], capacity),
		freqList: list.New(),
		maxsize:  maxsize,
		reserved: capacity,
	}

	cache.freqList.PushFront(&freqEntry[K, V]{
		freq:  0,
		items: make(map[*lfuItem[K, V]]struct{}),
	})

	return cache
}

// Insert inserts or updates the specified key-value pair. Inserting a new
// key into a full cache silently evicts the least frequently used item
// first; new keys start in the zero-frequency bucket.
func (c *LFUCache[K, V]) Insert(key K, value V) (prev V, replaced, stored bool) {
	if item, ok := c.items[key]; ok {
		prev = item.value
		item.value = value
		return prev, true, true
	}

	// Verify size not exceeded
	if c.maxsize != 0 && len(c.items) == c.maxsize {
		c.PopItem()
	}

	item := &lfuItem[K, V]{key: key, value: value}
	el := c.freqList.Front()
	el.Value.(*freqEntry[K, V]).items[item] = struct{}{}
	item.freqElement = el
	c.items[key] = item

	return prev, false, true
}

// Get returns the value for specified key if it is present in the cache
// and counts the access.
func (c *LFUCache[K, V]) Get(key K) (V, bool) {
	item, ok := c.items[key]
	if !ok {
		var v V
		return v, false
	}
	c.touch(item)

	return item.value, true
}

// Peek is Get without counting the access.
func (c *LFUCache[K, V]) Peek(key K) (V, bool) {
	item, ok := c.items[key]
	if !ok {
		var v V
		return v, false
	}

	return item.value, true
}

func (c *LFUCache[K, V]) Remove(key K) (V, bool) {
	item, ok := c.items[key]
	if !ok {
		var v V
		return v, false
	}
	c.removeItem(item)

	return item.value, true
}

// PopItem removes and returns a pair from the lowest occupied frequency
// bucket.
func (c *LFUCache[K, V]) PopItem() (key K, value V, ok bool) {
	for el := c.freqList.Front(); el != nil; el = el.Next() {
		for item := range el.Value.(*freqEntry[K, V]).items {
			c.removeItem(item)
			return item.key, item.value, true
		}
	}

	return key, value, false
}

func (c *LFUCache[K, V]) Len() int { return len(c.items) }

func (c *LFUCache[K, V]) MaxSize() int { return c.maxsize }

func (c *LFUCache[K, V]) Capacity() int {
	return max(c.reserved, len(c.items))
}

func (c *LFUCache[K, V]) Reserve(additional int) {
	want := len(c.items) + additional
	if want <= c.reserved {
		return
	}
	c.reserved = want
	c.reindex(c.reserved)
}

func (c *LFUCache[K, V]) ShrinkToFit() {
	c.reserved = len(c.items)
	c.reindex(c.reserved)
}

func (c *LFUCache[K, V]) Clear(reuse bool) {
	c.freqList.Init()
	c.freqList.PushFront(&freqEntry[K, V]{
		freq:  0,
		items: make(map[*lfuItem[K, V]]struct{}),
	})
	if reuse {
		clear(c.items)
		return
	}
	c.items = make(map[K]*lfuItem[K, V])
	c.reserved = 0
}

// Dump returns the content in frequency order, least frequently used first.
func (c *LFUCache[K, V]) Dump() (keys []K, values []V) {
	keys = make([]K, 0, len(c.items))
	values = make([]V, 0, len(c.items))
	for el := c.freqList.Front(); el != nil; el = el.Next() {
		for item := range el.Value.(*freqEntry[K, V]).items {
			keys = append(keys, item.key)
			values = append(values, item.value)
		}
	}

	return keys, values
}

// touch moves the item one frequency bucket up, materializing the bucket
// if the successor frequency is not adjacent in the list.
func (c *LFUCache[K, V]) touch(item *lfuItem[K, V]) {
	cur := item.freqElement
	entry := cur.Value.(*freqEntry[K, V])

	next := cur.Next()
	if next == nil || next.Value.(*freqEntry[K, V]).freq != entry.freq+1 {
		next = c.freqList.InsertAfter(&freqEntry[K, V]{
			freq:  entry.freq + 1,
			items: make(map[*lfuItem[K, V]]struct{}),
		}, cur)
	}

	delete(entry.items, item)
	next.Value.(*freqEntry[K, V]).items[item] = struct{}{}
	item.freqElement = next

	c.dropIfEmpty(cur)
}

func (c *LFUCache[K, V]) removeItem(item *lfuItem[K, V]) {
	entry := item.freqElement.Value.(*freqEntry[K, V])
	delete(c.items, item.key)
	delete(entry.items, item)
	c.dropIfEmpty(item.freqElement)
}

// The zero-frequency bucket is permanent; emptied higher buckets are
// unlinked.
func (c *LFUCache[K, V]) dropIfEmpty(el *list.Element) {
	entry := el.Value.(*freqEntry[K, V])
	if entry.freq != 0 && len(entry.items) == 0 {
		c.freqList.Remove(el)
	}
}

func (c *LFUCache[K, V]) reindex(capacity int) {
	items := make(map[K]*lfuItem[K, V], capacity)
	for key, item := range c.items {
		items[key] = item
	}
	c.items = items
}
