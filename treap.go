// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treap

// The implementation is a treap. See:
// https://en.wikipedia.org/wiki/Treap
// https://faculty.washington.edu/aragon/pubs/rst89.pdf
//
// Unlike a parent-linked treap, nodes here only point down. Every
// algorithm is handed the slot (**node) that owns the subtree it
// works on, and rotations relink that slot in place.

import (
	"bytes"
	"cmp"
	"fmt"
	"iter"
	"math/rand/v2"
)

// A comparer orders keys of type K.
type comparer[K any] interface {
	compare(a, b K) int
}

// ordered compares keys with their standard Go ordering.
// Its zero value is ready to use, which keeps the zero Map usable.
type ordered[K cmp.Ordered] struct{}

func (ordered[K]) compare(a, b K) int { return cmp.Compare(a, b) }

// cmpFunc compares keys with a caller-supplied function.
type cmpFunc[K any] func(K, K) int

func (f cmpFunc[K]) compare(a, b K) int { return f(a, b) }

type tree[K, V any, C comparer[K]] struct {
	root *node[K, V]
	size int
	cmp  C
	src  rand.Source // nil means the math/rand/v2 top-level source
	mods uint64      // structural modifications, checked by iterators
}

type node[K, V any] struct {
	left  *node[K, V]
	right *node[K, V]
	key   K
	val   V
	pri   uint64
}

func (t *tree[K, V, C]) init(opts []Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	t.src = o.src
	if t.src != nil {
		log.Tracef("using priority source %T", t.src)
	}
}

func (t *tree[K, V, C]) priority() uint64 {
	if t.src == nil {
		return rand.Uint64()
	}
	return t.src.Uint64()
}

// Len returns the number of entries.
func (t *tree[K, V, C]) Len() int {
	return t.size
}

// IsEmpty reports whether there are no entries.
func (t *tree[K, V, C]) IsEmpty() bool {
	return t.size == 0
}

// Clear removes all entries.
func (t *tree[K, V, C]) Clear() {
	log.Tracef("clearing %d entries", t.size)
	t.root = nil
	t.size = 0
	t.mods++
}

// Get returns the value stored for key and whether it was present.
func (t *tree[K, V, C]) Get(key K) (val V, ok bool) {
	x := t.get(key)
	if x == nil {
		return
	}
	return x.val, true
}

// GetPtr returns a pointer to the value stored for key,
// or nil if key is not present. The pointer may be used to
// update the value in place until key is removed.
func (t *tree[K, V, C]) GetPtr(key K) *V {
	x := t.get(key)
	if x == nil {
		return nil
	}
	return &x.val
}

// Contains reports whether key is present.
func (t *tree[K, V, C]) Contains(key K) bool {
	return t.get(key) != nil
}

// At returns the value stored for key.
// It panics if key is not present; use Get when absence is expected.
func (t *tree[K, V, C]) At(key K) V {
	x := t.get(key)
	if x == nil {
		panic("treap: no entry found for key")
	}
	return x.val
}

// AtPtr is like GetPtr but panics if key is not present.
func (t *tree[K, V, C]) AtPtr(key K) *V {
	x := t.get(key)
	if x == nil {
		panic("treap: no entry found for key")
	}
	return &x.val
}

func (t *tree[K, V, C]) get(key K) *node[K, V] {
	x := t.root
	for x != nil {
		c := t.cmp.compare(key, x.key)
		if c == 0 {
			return x
		}
		if c < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	return nil
}

// locate returns the slot holding key, or the nil slot where key would go.
func (t *tree[K, V, C]) locate(key K) **node[K, V] {
	pos := &t.root
	for x := *pos; x != nil; x = *pos {
		c := t.cmp.compare(key, x.key)
		if c == 0 {
			break
		}
		if c < 0 {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos
}

// Insert sets the value for key to val.
// If key was already present, Insert returns the previous value and true.
func (t *tree[K, V, C]) Insert(key K, val V) (old V, replaced bool) {
	old, replaced = t.insert(&t.root, key, val, t.priority())
	if !replaced {
		t.size++
		t.mods++
	}
	return old, replaced
}

// insert adds key to the subtree in slot pos, restoring heap order
// on the way back up: each ancestor rotates a child that outranks it.
// A matching key keeps its node. Its value is replaced and its
// priority raised to pri if pri is higher, so repeated inserts of a
// hot key tend to float it toward the root.
func (t *tree[K, V, C]) insert(pos **node[K, V], key K, val V, pri uint64) (old V, replaced bool) {
	x := *pos
	if x == nil {
		*pos = &node[K, V]{key: key, val: val, pri: pri}
		return
	}
	switch c := t.cmp.compare(key, x.key); {
	case c == 0:
		x.pri = max(x.pri, pri)
		old, x.val = x.val, val
		return old, true
	case c < 0:
		old, replaced = t.insert(&x.left, key, val, pri)
		if x.left.pri > x.pri {
			rotateRight(pos)
			t.mods++
		}
	default:
		old, replaced = t.insert(&x.right, key, val, pri)
		if x.right.pri > x.pri {
			rotateLeft(pos)
			t.mods++
		}
	}
	return old, replaced
}

// Extend inserts every pair of seq in order.
func (t *tree[K, V, C]) Extend(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		t.Insert(k, v)
	}
}

// Remove deletes key.
// If key was present, Remove returns its value and true.
func (t *tree[K, V, C]) Remove(key K) (old V, removed bool) {
	pos := t.locate(key)
	x := *pos
	if x == nil {
		return
	}

	// Rotate x down to be a leaf, respecting priorities.
	// An absent child counts as lowest priority; ties move the left child up.
	for x.left != nil || x.right != nil {
		if x.right == nil || x.left != nil && x.left.pri >= x.right.pri {
			rotateRight(pos)
			pos = &(*pos).right
		} else {
			rotateLeft(pos)
			pos = &(*pos).left
		}
	}
	*pos = nil
	t.size--
	t.mods++
	return x.val, true
}

// rotateRight rotates the subtree in slot pos,
// turning (q (p a b) c) into (p a (q b c)).
func rotateRight[K, V any](pos **node[K, V]) {
	q := *pos
	p := q.left
	q.left = p.right
	p.right = q
	*pos = p
}

// rotateLeft rotates the subtree in slot pos,
// turning (p a (q b c)) into (q (p a b) c).
func rotateLeft[K, V any](pos **node[K, V]) {
	p := *pos
	q := p.right
	p.right = q.left
	q.left = p
	*pos = q
}

// Depth returns the height of the tree: 0 when empty, 1 for a lone root.
func (t *tree[K, V, C]) Depth() int {
	return t.root.depth()
}

func (x *node[K, V]) depth() int {
	if x == nil {
		return 0
	}
	return 1 + max(x.left.depth(), x.right.depth())
}

// Dump returns the tree shape as nested (key:value left right) lists.
func (t *tree[K, V, C]) Dump() string {
	var buf bytes.Buffer
	var walk func(*node[K, V])
	walk = func(x *node[K, V]) {
		if x == nil {
			fmt.Fprintf(&buf, "nil")
			return
		}
		fmt.Fprintf(&buf, "(%v:%v ", x.key, x.val)
		walk(x.left)
		fmt.Fprintf(&buf, " ")
		walk(x.right)
		fmt.Fprintf(&buf, ")")
	}
	walk(t.root)
	return buf.String()
}
