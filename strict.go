package cache

import "github.com/moeryomenko/cachebox/internal/policies"

// Cache is a bounded cache without a replacement policy: once maxsize is
// reached, inserting a new key fails with ErrOverflow, and PopItem and
// Drain are unsupported.
type Cache[K comparable, V any] struct {
	engine[K, V]
}

// NewCache returns a no-eviction cache. maxsize 0 means unbounded.
func NewCache[K comparable, V any](maxsize int, opts ...Option[K, V]) (*Cache[K, V], error) {
	cfg, err := buildConfig(maxsize, opts)
	if err != nil {
		return nil, err
	}

	c := &Cache[K, V]{engine[K, V]{
		core:   policies.NewNoEvictionCache[K, V](maxsize, cfg.capacity),
		policy: NoEviction,
	}}
	if err := c.Update(cfg.initial...); err != nil {
		return nil, err
	}

	return c, nil
}

// Equal reports content equality with another no-eviction cache.
func (c *Cache[K, V]) Equal(other *Cache[K, V]) bool {
	if c == nil || other == nil {
		return c == other
	}

	return Equal[K, V](c, other)
}
