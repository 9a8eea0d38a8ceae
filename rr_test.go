package cache

import (
	"errors"
	"testing"
)

func TestRR_evictionScenario(t *testing.T) {
	cache, err := NewRRCache(3, WithInitialMap(map[string]int{`a`: 1, `b`: 2, `c`: 3}))
	if err != nil {
		fail(t, `unexpected construction error %v`, err)
	}

	if err := cache.Set(`d`, 4); err != nil {
		fail(t, `full rr insert must evict, not fail: %v`, err)
	}
	if cache.Len() != 3 {
		fail(t, `expected exactly one eviction, len=%d`, cache.Len())
	}
	if !cache.Contains(`d`) {
		fail(t, `expected new key present`)
	}

	survivors := 0
	for _, key := range []string{`a`, `b`, `c`} {
		if cache.Contains(key) {
			survivors++
		}
	}
	if survivors != 2 {
		fail(t, `expected two survivors, got %d`, survivors)
	}
}

func TestRR_popitem(t *testing.T) {
	cache, _ := NewRRCache[string, int](0)

	if _, _, err := cache.PopItem(); !errors.Is(err, ErrEmpty) {
		fail(t, `expected empty cache, got %v`, err)
	}

	cache.Set(`a`, 1)
	cache.Set(`b`, 2)

	seen := map[string]int{}
	for range 2 {
		key, value, err := cache.PopItem()
		if err != nil {
			fail(t, `unexpected popitem error %v`, err)
		}
		seen[key] = value
	}
	if seen[`a`] != 1 || seen[`b`] != 2 || !cache.IsEmpty() {
		fail(t, `popitem must drain all pairs, got %v`, seen)
	}
}

// Victim selection must be approximately uniform over present keys. With
// 3000 trials over three keys the expected count per key is 1000 with a
// standard deviation around 26; a 150 tolerance keeps flakes out.
func TestRR_uniformEviction(t *testing.T) {
	const trials = 3000

	evicted := map[string]int{}
	for range trials {
		cache, err := NewRRCache(3, WithInitialMap(map[string]int{`a`: 1, `b`: 2, `c`: 3}))
		if err != nil {
			fail(t, `unexpected construction error %v`, err)
		}
		cache.Set(`d`, 4)

		for _, key := range []string{`a`, `b`, `c`} {
			if !cache.Contains(key) {
				evicted[key]++
			}
		}
	}

	for _, key := range []string{`a`, `b`, `c`} {
		count := evicted[key]
		if count < trials/3-150 || count > trials/3+150 {
			fail(t, `eviction skewed: %v evicted %d of %d times`, key, count, trials)
		}
	}
}
