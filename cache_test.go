package cache

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type testEntry struct {
	Key   string
	Value string
}

func genTestEntry() gopter.Gen {
	notEmptyString := func(s string) bool {
		return s != ""
	}
	return gen.Struct(reflect.TypeOf(&testEntry{}), map[string]gopter.Gen{
		"Key":   gen.AnyString().SuchThat(notEmptyString),
		"Value": gen.AnyString().SuchThat(notEmptyString),
	})
}

func Test_MaxsizeInvariant(t *testing.T) {
	testcases := map[string]Policy{
		"FIFO": FIFO,
		"RR":   RR,
		"LRU":  LRU,
		"LFU":  LFU,
	}

	for name, testcase := range testcases {
		t.Run(name, func(t *testing.T) {
			parameters := gopter.DefaultTestParameters()
			properties := gopter.NewProperties(parameters)

			properties.Property(fmt.Sprintf("cache(%s) size doesn't exceed the specified maxsize", name), prop.ForAll(
				func(maxsize int, entries []testEntry) bool {
					cache, err := New[string, string](maxsize, testcase)
					if err != nil {
						return false
					}

					for _, entry := range entries {
						if err := cache.Set(entry.Key, entry.Value); err != nil {
							return false
						}
						if cache.Len() > maxsize {
							return false
						}
					}

					return true
				},
				gen.IntRange(10, 20),
				gen.SliceOf(genTestEntry()),
			))

			properties.TestingRun(t)
		})
	}
}

func Test_NoEvictionOverflow(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("full no-eviction cache refuses new keys without mutating", prop.ForAll(
		func(entries []testEntry) bool {
			const maxsize = 5

			cache, err := NewCache[string, string](maxsize)
			if err != nil {
				return false
			}

			for _, entry := range entries {
				known := cache.Contains(entry.Key)
				before := cache.Len()

				err := cache.Set(entry.Key, entry.Value)
				switch {
				case known:
					if err != nil || cache.Len() != before {
						return false
					}
				case before == maxsize:
					if !errors.Is(err, ErrOverflow) || cache.Len() != maxsize {
						return false
					}
					if cache.Contains(entry.Key) {
						return false
					}
				default:
					if err != nil || cache.Len() != before+1 {
						return false
					}
				}
			}

			return cache.Len() <= maxsize
		},
		gen.SliceOf(genTestEntry()),
	))

	properties.TestingRun(t)
}

func fail(t *testing.T, msg string, args ...any) {
	t.Logf(msg, args...)
	t.FailNow()
}
