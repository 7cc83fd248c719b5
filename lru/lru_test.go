// Copyright (C) 2017-2020  Nexedi SA and Contributors.
//                          Kirill Smelkov <kirr@nexedi.com>
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// You can also Link and Combine this program with other software covered by
// the terms of any of the Free Software licenses or any of the Open Source
// Initiative approved licenses and Convey the resulting work. Corresponding
// source of such a combination shall include the source code for all other
// software used.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.
// See https://www.nexedi.com/licensing for rationale and options.

package lru

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"
)

type Checker struct {
	t *testing.T
}

func (c *Checker) ok1(v bool) {
	c.t.Helper()
	if !v {
		c.t.Fatal("!ok")
	}
}

func (c *Checker) assertEq(a, b interface{}) {
	c.t.Helper()
	if !reflect.DeepEqual(a, b) {
		c.t.Fatal("!eq:\n", pretty.Compare(a, b))
	}
}

// checkLRU verifies cache LRU list against keys listed in MRU -> LRU order
// and that accounted size matches entries on the list.
func checkLRU[K comparable, V any](t *testing.T, c *Cache[K, V], sizeOk int, mruvOk ...K) {
	t.Helper()

	c.mu.Lock()
	defer c.mu.Unlock()

	mruv := []K{}
	size := 0
	for hp, h := &c.lru, c.lru.Prev(); h != &c.lru; hp, h = h, h.Prev() {
		if h.Next() != hp {
			t.Fatalf("LRU list .next/.prev broken for %v", h.Entry().key)
		}
		e := h.Entry()
		if c.entryMap[e.key] != e {
			t.Fatalf("entry %v is on LRU but not in entryMap", e.key)
		}
		mruv = append(mruv, e.key)
		size += e.size
	}

	if mruvOk == nil {
		mruvOk = []K{}
	}
	if !reflect.DeepEqual(mruv, mruvOk) {
		t.Fatalf("MRU:\n%s\n", pretty.Compare(mruvOk, mruv))
	}
	if len(c.entryMap) != len(mruv) {
		t.Fatalf("lru: %d entries in map; %d on LRU list", len(c.entryMap), len(mruv))
	}
	if size != sizeOk {
		t.Fatalf("lru: size(all-entries-in-lru): %d  ; want: %d", size, sizeOk)
	}
	if size != c.size {
		t.Fatalf("lru: size(all-entries-in-lru): %d  ; c.size: %d", size, c.size)
	}
}

func TestCache(t *testing.T) {
	__ := Checker{t}
	ok1 := func(v bool) { t.Helper(); __.ok1(v) }

	type evicted struct {
		key   string
		value string
	}
	var evictv []evicted

	c := New[string, string](10, func(v string) int { return len(v) })
	c.OnEvict(func(k, v string) {
		evictv = append(evictv, evicted{k, v})
	})
	checkLRU(t, c, 0)

	c.Set("a", "hello")
	checkLRU(t, c, 5, "a")

	c.Set("b", "zz")
	checkLRU(t, c, 7, "b", "a")

	v, ok := c.Get("a")
	ok1(ok && v == "hello")
	checkLRU(t, c, 7, "a", "b")

	_, ok = c.Get("x")
	ok1(!ok)

	// Peek does not change LRU order
	v, ok = c.Peek("b")
	ok1(ok && v == "zz")
	checkLRU(t, c, 7, "a", "b")

	// b is evicted as least recently used
	c.Set("c", "www")
	checkLRU(t, c, 10, "c", "a", "b")
	c.Set("d", "1")
	checkLRU(t, c, 9, "d", "c", "a")
	__.assertEq(evictv, []evicted{{"b", "zz"}})

	// replacing value re-accounts size
	c.Set("c", "0123")
	checkLRU(t, c, 10, "c", "d", "a")

	// shrinking evicts from LRU end
	c.SetSizeMax(5)
	checkLRU(t, c, 5, "c", "d")
	__.assertEq(evictv, []evicted{{"b", "zz"}, {"a", "hello"}})

	ok1(c.Del("d"))
	ok1(!c.Del("d"))
	checkLRU(t, c, 4, "c")

	// value bigger than whole cache does not stay
	c.Set("big", "0123456789")
	checkLRU(t, c, 0)
	__.assertEq(evictv, []evicted{{"b", "zz"}, {"a", "hello"}, {"c", "0123"}, {"big", "0123456789"}})

	ok1(c.Len() == 0)
	ok1(c.Size() == 0)
}

func TestCacheCount(t *testing.T) {
	assert := require.New(t)

	// nil sizeof - sizeMax limits number of entries
	c := New[int, string](3, nil)
	for i := 0; i < 5; i++ {
		c.Set(i, fmt.Sprint(i))
	}
	checkLRU(t, c, 3, 4, 3, 2)
	assert.Equal([]int{2, 3, 4}, c.Keys())
	assert.Equal(3, c.Len())

	_, ok := c.Get(0)
	assert.False(ok)

	c.Get(2)
	c.Set(5, "5")
	checkLRU(t, c, 3, 5, 2, 4)

	c.Purge()
	checkLRU(t, c, 0)
	assert.Equal(0, c.Len())
	assert.Equal([]int{}, c.Keys())

	// cache stays usable after purge
	c.Set(7, "7")
	checkLRU(t, c, 1, 7)
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](64, nil)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				k := (g*1000 + i) % 100
				c.Set(k, i)
				c.Get((k + 1) % 100)
				if i%10 == 0 {
					c.Del((k + 2) % 100)
				}
			}
		}(g)
	}
	wg.Wait()

	c.mu.Lock()
	n := c.lru.Len()
	c.mu.Unlock()
	if n != c.Len() || n > 64 {
		t.Fatalf("lru: %d entries on list; %d in map", n, c.Len())
	}
	checkLRU(t, c, n, lruKeys(c)...)
}

// lruKeys returns cache keys in MRU -> LRU order.
func lruKeys[K comparable, V any](c *Cache[K, V]) []K {
	keyv := c.Keys()
	for i, j := 0, len(keyv)-1; i < j; i, j = i+1, j-1 {
		keyv[i], keyv[j] = keyv[j], keyv[i]
	}
	return keyv
}

func BenchmarkCacheHit(b *testing.B) {
	c := New[int, int](1024, nil)
	for i := 0; i < 1024; i++ {
		c.Set(i, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(i % 1024)
	}
}

func BenchmarkCacheMiss(b *testing.B) {
	c := New[int, int](1024, nil)

	for i := 0; i < b.N; i++ {
		c.Set(i, i)
	}
}
