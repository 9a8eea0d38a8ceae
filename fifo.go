package cache

import "github.com/moeryomenko/cachebox/internal/policies"

// FIFOCache evicts in insertion order: inserting a new key into a full
// cache silently discards the oldest surviving key. Re-inserting an
// existing key replaces the value without moving it in the queue.
type FIFOCache[K comparable, V any] struct {
	engine[K, V]
	fifo *policies.FIFOCache[K, V]
}

// NewFIFOCache returns a first-in-first-out cache. maxsize 0 means
// unbounded.
func NewFIFOCache[K comparable, V any](maxsize int, opts ...Option[K, V]) (*FIFOCache[K, V], error) {
	cfg, err := buildConfig(maxsize, opts)
	if err != nil {
		return nil, err
	}

	core := policies.NewFIFOCache[K, V](maxsize, cfg.capacity)
	c := &FIFOCache[K, V]{
		engine: engine[K, V]{core: core, policy: FIFO},
		fifo:   core,
	}
	if err := c.Update(cfg.initial...); err != nil {
		return nil, err
	}

	return c, nil
}

// First returns the key at position n from the front of the queue; n 0 is
// the next eviction victim. ok is false when n is out of range.
func (c *FIFOCache[K, V]) First(n int) (K, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.fifo.First(n)
}

// Last returns the most recently inserted key, or false on an empty cache.
func (c *FIFOCache[K, V]) Last() (K, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.fifo.Last()
}

// Equal reports content equality with another FIFO cache; queue order does
// not participate.
func (c *FIFOCache[K, V]) Equal(other *FIFOCache[K, V]) bool {
	if c == nil || other == nil {
		return c == other
	}

	return Equal[K, V](c, other)
}
