package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_roundTrip(t *testing.T) {
	for _, policy := range []Policy{NoEviction, FIFO, RR, LRU, LFU} {
		t.Run(policy.String(), func(t *testing.T) {
			// maxsize 3 filled with 3 entries covers the full-cache boundary.
			original, err := New[string, int](3, policy)
			require.NoError(t, err)
			require.NoError(t, original.Update(
				Entry[string, int]{Key: "a", Value: 1},
				Entry[string, int]{Key: "b", Value: 2},
				Entry[string, int]{Key: "c", Value: 3},
			))

			restored, err := Restore(original.Export())
			require.NoError(t, err)

			assert.Equal(t, policy, restored.Policy())
			assert.Equal(t, original.MaxSize(), restored.MaxSize())
			assert.True(t, Equal(original, restored))
		})
	}
}

func TestSnapshot_roundTripEmpty(t *testing.T) {
	for _, policy := range []Policy{NoEviction, FIFO, RR, LRU, LFU} {
		t.Run(policy.String(), func(t *testing.T) {
			original, err := New[string, int](2, policy, WithCapacity[string, int](8))
			require.NoError(t, err)

			restored, err := Restore(original.Export())
			require.NoError(t, err)

			assert.True(t, restored.IsEmpty())
			assert.GreaterOrEqual(t, restored.Capacity(), 8)
			assert.True(t, Equal(original, restored))
		})
	}
}

func TestSnapshot_fifoOrderPreserved(t *testing.T) {
	original, err := NewFIFOCache[string, int](3)
	require.NoError(t, err)
	require.NoError(t, original.Set("a", 1))
	require.NoError(t, original.Set("b", 2))
	require.NoError(t, original.Set("c", 3))

	restored, err := Restore(original.Export())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, restored.Keys())

	// The restored queue must keep evicting in the original order.
	key, _, err := restored.PopItem()
	require.NoError(t, err)
	assert.Equal(t, "a", key)
}

func TestSnapshot_corrupt(t *testing.T) {
	for name, snapshot := range map[string]Snapshot[string, int]{
		"unknown policy": {
			Policy:  Policy(99),
			Entries: []Entry[string, int]{{Key: "a", Value: 1}},
		},
		"negative maxsize": {
			Policy:  FIFO,
			Maxsize: -1,
		},
		"negative capacity": {
			Policy:   FIFO,
			Capacity: -1,
		},
		"entries exceed maxsize": {
			Policy:  FIFO,
			Maxsize: 1,
			Entries: []Entry[string, int]{{Key: "a", Value: 1}, {Key: "b", Value: 2}},
		},
		"duplicate keys": {
			Policy:  RR,
			Maxsize: 3,
			Entries: []Entry[string, int]{{Key: "a", Value: 1}, {Key: "a", Value: 2}},
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Restore(snapshot)
			assert.ErrorIs(t, err, ErrCorruptState)
		})
	}
}

func TestEqual_contentOnly(t *testing.T) {
	// FIFO equality ignores queue order: same content inserted in a
	// different order still compares equal.
	left, err := NewFIFOCache[string, int](4)
	require.NoError(t, err)
	right, err := NewFIFOCache[string, int](4)
	require.NoError(t, err)

	require.NoError(t, left.Set("a", 1))
	require.NoError(t, left.Set("b", 2))
	require.NoError(t, right.Set("b", 2))
	require.NoError(t, right.Set("a", 1))

	assert.True(t, left.Equal(right))
}

func TestEqual_nil(t *testing.T) {
	cache, err := NewFIFOCache[string, int](2)
	require.NoError(t, err)

	assert.False(t, cache.Equal(nil))
	assert.True(t, (*FIFOCache[string, int])(nil).Equal(nil))
	assert.False(t, Equal[string, int](cache, nil))
}

func TestEqual_discriminates(t *testing.T) {
	fifo, err := NewFIFOCache(2, WithInitial(Entry[string, int]{Key: "a", Value: 1}))
	require.NoError(t, err)

	t.Run("maxsize", func(t *testing.T) {
		other, err := NewFIFOCache(3, WithInitial(Entry[string, int]{Key: "a", Value: 1}))
		require.NoError(t, err)
		assert.False(t, fifo.Equal(other))
	})

	t.Run("policy", func(t *testing.T) {
		other, err := NewRRCache(2, WithInitial(Entry[string, int]{Key: "a", Value: 1}))
		require.NoError(t, err)
		assert.False(t, Equal[string, int](fifo, other))
	})

	t.Run("value", func(t *testing.T) {
		other, err := NewFIFOCache(2, WithInitial(Entry[string, int]{Key: "a", Value: 2}))
		require.NoError(t, err)
		assert.False(t, fifo.Equal(other))
	})
}
