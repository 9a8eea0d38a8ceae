package cache

import "fmt"

// Snapshot is a point-in-time copy of a cache's full state: policy,
// maxsize, reserved capacity and all entries. It is an in-memory value, not
// a wire format; Restore rebuilds an equivalent instance from it.
type Snapshot[K comparable, V any] struct {
	Policy   Policy
	Maxsize  int
	Capacity int
	// Entries are in the policy's eviction order, victim first, so replay
	// through the normal insert path reconstructs the order metadata.
	Entries []Entry[K, V]
}

// Restore reconstructs a cache from a snapshot produced by Export. A
// snapshot that violates the target policy's invariants fails with
// ErrCorruptState.
func Restore[K comparable, V any](s Snapshot[K, V]) (BaseCache[K, V], error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	c, err := New(s.Maxsize, s.Policy, WithCapacity[K, V](s.Capacity), WithInitial(s.Entries...))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	return c, nil
}

func (s Snapshot[K, V]) validate() error {
	switch s.Policy {
	case NoEviction, FIFO, RR, LRU, LFU:
	default:
		return fmt.Errorf("%w: unknown policy %d", ErrCorruptState, int(s.Policy))
	}
	if s.Maxsize < 0 {
		return fmt.Errorf("%w: negative maxsize", ErrCorruptState)
	}
	if s.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity", ErrCorruptState)
	}
	if s.Maxsize != 0 && len(s.Entries) > s.Maxsize {
		return fmt.Errorf("%w: %d entries exceed maxsize %d", ErrCorruptState, len(s.Entries), s.Maxsize)
	}

	seen := make(map[K]struct{}, len(s.Entries))
	for _, entry := range s.Entries {
		if _, ok := seen[entry.Key]; ok {
			return fmt.Errorf("%w: duplicate key %v", ErrCorruptState, entry.Key)
		}
		seen[entry.Key] = struct{}{}
	}

	return nil
}
