package cache

import "github.com/moeryomenko/cachebox/internal/policies"

// RRCache is a random-replacement cache: inserting a new key into a full
// cache silently discards a uniformly random key. Victim selection is not
// deterministic across runs.
type RRCache[K comparable, V any] struct {
	engine[K, V]
}

// NewRRCache returns a random-replacement cache. maxsize 0 means unbounded.
func NewRRCache[K comparable, V any](maxsize int, opts ...Option[K, V]) (*RRCache[K, V], error) {
	cfg, err := buildConfig(maxsize, opts)
	if err != nil {
		return nil, err
	}

	c := &RRCache[K, V]{engine[K, V]{
		core:   policies.NewRRCache[K, V](maxsize, cfg.capacity),
		policy: RR,
	}}
	if err := c.Update(cfg.initial...); err != nil {
		return nil, err
	}

	return c, nil
}

// Equal reports content equality with another random-replacement cache.
func (c *RRCache[K, V]) Equal(other *RRCache[K, V]) bool {
	if c == nil || other == nil {
		return c == other
	}

	return Equal[K, V](c, other)
}
