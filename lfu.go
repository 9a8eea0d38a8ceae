package cache

import "github.com/moeryomenko/cachebox/internal/policies"

// LFUCache discards the least frequently used items first. Get counts as
// use; Peek and Contains do not. Frequencies are not carried through
// Export/Restore: a restored cache starts with a flat use count.
type LFUCache[K comparable, V any] struct {
	engine[K, V]
}

// NewLFUCache returns a least-frequently-used cache. maxsize 0 means
// unbounded.
func NewLFUCache[K comparable, V any](maxsize int, opts ...Option[K, V]) (*LFUCache[K, V], error) {
	cfg, err := buildConfig(maxsize, opts)
	if err != nil {
		return nil, err
	}

	c := &LFUCache[K, V]{engine[K, V]{
		core:   policies.NewLFUCache[K, V](maxsize, cfg.capacity),
		policy: LFU,
	}}
	if err := c.Update(cfg.initial...); err != nil {
		return nil, err
	}

	return c, nil
}

// Equal reports content equality with another LFU cache; use counts do not
// participate.
func (c *LFUCache[K, V]) Equal(other *LFUCache[K, V]) bool {
	if c == nil || other == nil {
		return c == other
	}

	return Equal[K, V](c, other)
}
