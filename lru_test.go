package cache

import "testing"

func TestLRU_eviction(t *testing.T) {
	cache, err := NewLRUCache[string, string](2)
	if err != nil {
		fail(t, `unexpected construction error %v`, err)
	}

	cache.Set(`k1`, `v1`)
	cache.Set(`k2`, `v2`)
	cache.Set(`k3`, `v3`)

	if cache.Contains(`k1`) {
		fail(t, `expected key evicted by lru policy`)
	}
	if v, err := cache.Get(`k3`); err != nil || v != `v3` {
		fail(t, `unexpected value %v`, v)
	}
}

func TestLRU_accessPromotes(t *testing.T) {
	cache, _ := NewLRUCache[string, string](2)

	cache.Set(`k1`, `v1`)
	cache.Set(`k2`, `v2`)
	if _, err := cache.Get(`k1`); err != nil {
		fail(t, `expected key present`)
	}
	cache.Set(`k3`, `v3`)

	if cache.Contains(`k2`) {
		fail(t, `expected least recently used key evicted`)
	}
	if !cache.Contains(`k1`) {
		fail(t, `expected recently read key kept`)
	}
}

func TestLRU_peekDoesNotPromote(t *testing.T) {
	cache, _ := NewLRUCache[string, string](2)

	cache.Set(`k1`, `v1`)
	cache.Set(`k2`, `v2`)
	if _, err := cache.Peek(`k1`); err != nil {
		fail(t, `expected key present`)
	}
	cache.Set(`k3`, `v3`)

	if cache.Contains(`k1`) {
		fail(t, `peek must not promote, k1 should be the victim`)
	}
}

func TestLRU_popitemReturnsColdest(t *testing.T) {
	cache, _ := NewLRUCache[string, int](0)

	cache.Set(`a`, 1)
	cache.Set(`b`, 2)
	cache.Get(`a`)

	key, value, err := cache.PopItem()
	if err != nil || key != `b` || value != 2 {
		fail(t, `unexpected victim %v %v %v`, key, value, err)
	}
}
