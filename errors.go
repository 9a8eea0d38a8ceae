package cache

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is reported by keyed lookups and removals for absent keys.
	ErrNotFound = errors.New("key not found")
	// ErrOverflow is reported by inserts into a full cache under a policy
	// that performs no eviction.
	ErrOverflow = errors.New("cache overflow")
	// ErrUnsupported is reported by operations a policy cannot provide,
	// such as PopItem on a cache with no eviction order.
	ErrUnsupported = errors.New("operation not supported by eviction policy")
	// ErrEmpty is reported by PopItem on an empty cache.
	ErrEmpty = errors.New("cache is empty")
	// ErrInvalidArgument is reported for malformed sizes and counts.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCorruptState is reported by Restore for snapshots that violate the
	// target policy's invariants.
	ErrCorruptState = errors.New("corrupt cache snapshot")
)

func errNegative(what string) error {
	return fmt.Errorf("%w: negative %s", ErrInvalidArgument, what)
}
