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

// Package lru provides size-bounded cache that evicts least recently used entries.
//
// Entries are kept on intrusive list in LRU order: the least recently used
// entry goes right after list anchor, the most recently used - right before it.
package lru

import (
	"fmt"
	"sync"

	"github.com/golang/glog"

	"lab.nexedi.com/kirr/ilist/xcommon/xcontainer/list"
)

// Cache is LRU cache of key -> value entries.
//
// Cache is safe for concurrent use.
type Cache[K comparable, V any] struct {
	// the list itself is not thread-safe; mu serializes all access to
	// entryMap and to lru
	mu sync.Mutex

	entryMap map[K]*entry[K, V]
	lru      list.Head[entry[K, V]] // entries in LRU order
	size     int                    // sum of sizeof(value) of all entries
	sizeMax  int                    // cache is allowed to occupy not more than this
	sizeof   func(V) int

	onEvict func(K, V)
}

// entry is one cached key -> value.
type entry[K comparable, V any] struct {
	key   K
	value V
	size  int

	inLRU list.Head[entry[K, V]] // in Cache.lru
}

// New creates new cache that keeps sum of sizeof(value) for its entries not
// more than sizeMax.
//
// If sizeof is nil every entry is accounted as having size 1, i.e. sizeMax
// limits the number of entries.
func New[K comparable, V any](sizeMax int, sizeof func(V) int) *Cache[K, V] {
	if sizeof == nil {
		sizeof = func(V) int { return 1 }
	}
	c := &Cache[K, V]{
		entryMap: make(map[K]*entry[K, V]),
		sizeMax:  sizeMax,
		sizeof:   sizeof,
	}
	c.lru.Init()
	return c
}

// OnEvict installs f to be called for every entry evicted due to cache size limit.
//
// f is called with cache locked and must not use the cache.
func (c *Cache[K, V]) OnEvict(f func(key K, value V)) {
	c.mu.Lock()
	c.onEvict = f
	c.mu.Unlock()
}

// Get returns value cached for key.
//
// Found entry becomes the most recently used.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entryMap[key]
	if !ok {
		return value, false
	}
	e.inLRU.MoveBefore(&c.lru)
	return e.value, true
}

// Peek is like Get but does not change LRU order.
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entryMap[key]
	if !ok {
		return value, false
	}
	return e.value, true
}

// Set associates value with key.
//
// The entry becomes the most recently used. If the cache grows over its
// size limit least recently used entries are evicted.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entryMap[key]
	if ok {
		c.size -= e.size
	} else {
		e = entryAlloc[K, V]()
		e.key = key
		c.entryMap[key] = e
	}
	e.value = value
	e.size = c.sizeof(value)
	c.size += e.size

	e.inLRU.MoveBefore(&c.lru)
	if c.size > c.sizeMax {
		c.gc()
	}
}

// Del removes entry for key from the cache.
//
// It returns whether the entry was there.
func (c *Cache[K, V]) Del(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entryMap[key]
	if !ok {
		return false
	}
	c.drop(e)
	return true
}

// Purge removes all entries from the cache.
//
// Eviction callback is not called for purged entries.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.ClearAll()
	for k := range c.entryMap {
		delete(c.entryMap, k)
	}
	c.size = 0
}

// Len returns number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entryMap)
}

// Size returns accounted size of all cached values.
func (c *Cache[K, V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// SetSizeMax adjusts cache size limit.
func (c *Cache[K, V]) SetSizeMax(sizeMax int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sizeMax = sizeMax
	if c.size > c.sizeMax {
		c.gc()
	}
}

// Keys returns keys of all entries ordered from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keyv := make([]K, 0, len(c.entryMap))
	c.lru.ForEach(func(h *list.Head[entry[K, V]]) {
		keyv = append(keyv, h.Entry().key)
	})
	return keyv
}

// ---- garbage collection ----

// gc evicts least recently used entries until cache fits into its size limit.
//
// must be called with .mu locked.
func (c *Cache[K, V]) gc() {
	for c.size > c.sizeMax {
		h := c.lru.Next()
		if h == &c.lru {
			panic(fmt.Sprintf("lru: gc: empty .lru but .size (%d) > .sizeMax (%d)", c.size, c.sizeMax))
		}

		e := h.Entry()
		key, value := e.key, e.value
		glog.V(2).Infof("lru: evict %v (size %d)", key, e.size)
		c.drop(e)

		if c.onEvict != nil {
			c.onEvict(key, value)
		}
	}
}

// drop removes e from the cache and releases it.
//
// must be called with .mu locked.
func (c *Cache[K, V]) drop(e *entry[K, V]) {
	e.inLRU.Delete()
	delete(c.entryMap, e.key)
	c.size -= e.size
	e.release()
}

// entryAlloc allocates new entry with its LRU head bound to it.
func entryAlloc[K comparable, V any]() *entry[K, V] {
	e := &entry[K, V]{}
	e.inLRU.Bind(e)
	return e
}

// release clears e so that dropped entry does not retain key and value.
func (e *entry[K, V]) release() {
	var zk K
	var zv V
	e.key = zk
	e.value = zv
	e.size = 0
}
