package cache

// Option is an option that can be applied to cache construction.
type Option[K comparable, V any] func(*config[K, V])

type config[K comparable, V any] struct {
	capacity int
	initial  []Entry[K, V]
}

// WithCapacity pre-reserves storage for at least n entries, independent of
// the maxsize bound.
func WithCapacity[K comparable, V any](n int) Option[K, V] {
	return func(c *config[K, V]) {
		c.capacity = n
	}
}

// WithInitial fills the cache at construction time. Entries go through the
// policy's normal insert path, so a no-eviction cache fails construction
// with ErrOverflow rather than truncating.
func WithInitial[K comparable, V any](entries ...Entry[K, V]) Option[K, V] {
	return func(c *config[K, V]) {
		c.initial = append(c.initial, entries...)
	}
}

// WithInitialMap is WithInitial for mapping input; insertion order follows
// map iteration order.
func WithInitialMap[K comparable, V any](items map[K]V) Option[K, V] {
	return func(c *config[K, V]) {
		for key, value := range items {
			c.initial = append(c.initial, Entry[K, V]{Key: key, Value: value})
		}
	}
}

func buildConfig[K comparable, V any](maxsize int, opts []Option[K, V]) (config[K, V], error) {
	var cfg config[K, V]
	for _, opt := range opts {
		opt(&cfg)
	}
	if maxsize < 0 {
		return cfg, errNegative("maxsize")
	}
	if cfg.capacity < 0 {
		return cfg, errNegative("capacity")
	}

	return cfg, nil
}
