package cache

import "github.com/moeryomenko/cachebox/internal/policies"

// LRUCache discards the least recently used items first. Get and Insert of
// an existing key count as use; Peek and Contains do not.
type LRUCache[K comparable, V any] struct {
	engine[K, V]
}

// NewLRUCache returns a least-recently-used cache. maxsize 0 means
// unbounded.
func NewLRUCache[K comparable, V any](maxsize int, opts ...Option[K, V]) (*LRUCache[K, V], error) {
	cfg, err := buildConfig(maxsize, opts)
	if err != nil {
		return nil, err
	}

	c := &LRUCache[K, V]{engine[K, V]{
		core:   policies.NewLRUCache[K, V](maxsize, cfg.capacity),
		policy: LRU,
	}}
	if err := c.Update(cfg.initial...); err != nil {
		return nil, err
	}

	return c, nil
}

// Equal reports content equality with another LRU cache; recency order does
// not participate.
func (c *LRUCache[K, V]) Equal(other *LRUCache[K, V]) bool {
	if c == nil || other == nil {
		return c == other
	}

	return Equal[K, V](c, other)
}
