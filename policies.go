package cache

// Policy selects the eviction behaviour of a cache instance.
type Policy int

const (
	// Rejects inserts into a full cache instead of evicting.
	NoEviction Policy = iota
	// Discards the oldest inserted item first.
	FIFO
	// Discards a uniformly random item.
	RR
	// Discards the least recently used items first.
	LRU
	// Discards the least frequently used items first.
	LFU
)

func (p Policy) String() string {
	switch p {
	case NoEviction:
		return "Cache"
	case FIFO:
		return "FIFOCache"
	case RR:
		return "RRCache"
	case LRU:
		return "LRUCache"
	case LFU:
		return "LFUCache"
	default:
		return "UnknownPolicy"
	}
}
