// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treap implements in-memory ordered maps and sets backed by
// a randomized treap.
//
// A treap is a binary search tree over keys that is also a max-heap
// over priorities drawn at random when each key is inserted. The
// random priorities give the tree expected O(log n) depth for any
// insertion order, without storing balance information in the nodes.
//
// [Map][K, V] is suitable for ordered types K,
// while [MapFunc][K, V] supports arbitrary keys and comparison functions.
// [Set] and [SetFunc] are the corresponding sets.
//
// None of the types are safe for concurrent use. Any number of
// goroutines may read a map at once, but a goroutine that modifies it
// needs exclusive access, typically by guarding it with a sync.RWMutex.
package treap

import (
	"cmp"
	"iter"
)

// A Map is a map[K]V ordered according to K's standard Go ordering.
// The zero value of a Map is an empty Map ready to use,
// drawing priorities from the math/rand/v2 top-level source.
type Map[K cmp.Ordered, V any] struct {
	tree[K, V, ordered[K]]
}

// New returns an empty Map configured by opts.
func New[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	m := new(Map[K, V])
	m.init(opts)
	return m
}

// Collect returns a new Map, configured by opts, holding the pairs of seq.
// Later pairs replace earlier pairs with the same key.
func Collect[K cmp.Ordered, V any](seq iter.Seq2[K, V], opts ...Option) *Map[K, V] {
	m := New[K, V](opts...)
	m.Extend(seq)
	return m
}

// A MapFunc is a map[K]V ordered according to a comparison function.
// A MapFunc must be created with [NewFunc].
type MapFunc[K, V any] struct {
	tree[K, V, cmpFunc[K]]
}

// NewFunc returns an empty MapFunc ordered by cmp,
// which must return a negative number when a < b,
// a positive number when a > b, and zero when a == b.
func NewFunc[K, V any](cmp func(a, b K) int, opts ...Option) *MapFunc[K, V] {
	if cmp == nil {
		panic("treap: nil comparison function")
	}
	m := new(MapFunc[K, V])
	m.cmp = cmp
	m.init(opts)
	return m
}
