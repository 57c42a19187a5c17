// Package cache is an explicit memoization layer for derived trend
// artifacts. Keys are content hashes of the inputs, so identical
// corpus + parameters hit the cache and anything else recomputes;
// the layer has no ties to any UI or session lifecycle.
package cache

import (
	"hash/fnv"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Memo is an LRU-bounded memoization table.
type Memo[V any] struct {
	lru *lru.Cache[uint64, V]
}

// New creates a Memo holding at most size entries.
func New[V any](size int) (*Memo[V], error) {
	c, err := lru.New[uint64, V](size)
	if err != nil {
		return nil, err
	}
	return &Memo[V]{lru: c}, nil
}

// Get returns the memoized value for key, if present.
func (m *Memo[V]) Get(key uint64) (V, bool) {
	return m.lru.Get(key)
}

// Add stores a value under key.
func (m *Memo[V]) Add(key uint64, v V) {
	m.lru.Add(key, v)
}

// Len returns the current number of entries.
func (m *Memo[V]) Len() int { return m.lru.Len() }

// Key builds a content-hash key from string parts. Parts are length-
// prefixed before hashing so ("ab","c") and ("a","bc") do not
// collide.
func Key(parts ...string) uint64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(strconv.Itoa(len(p))))
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return h.Sum64()
}
