// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treap

import "iter"

// None of the traversals below recurse: each keeps its own stack of
// pending nodes, so a traversal can stop at any yield and costs
// O(depth) memory.

// checkMods panics if the tree was structurally modified since a
// traversal began. The traversal stacks hold pointers into the tree
// that a rotation would invalidate.
func (t *tree[K, V, C]) checkMods(mods uint64) {
	if t.mods != mods {
		panic("treap: map modified during iteration")
	}
}

// All returns an iterator over the entries of the map in no
// particular order. Callers must not depend on the order, which may
// differ between calls.
//
// Updating values in place during the iteration is allowed.
// Insert, Remove and Clear calls that change the shape of the tree
// during the iteration cause a panic.
func (t *tree[K, V, C]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := range t.preorder() {
			if !yield(x.key, x.val) {
				return
			}
		}
	}
}

// AllPtr is like All but yields a pointer to each value, which may be
// used to update the value in place. Each entry is visited exactly once.
func (t *tree[K, V, C]) AllPtr() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for x := range t.preorder() {
			if !yield(x.key, &x.val) {
				return
			}
		}
	}
}

// preorder walks the tree with a work list seeded with the root:
// pop a node, push its children, yield the node.
func (t *tree[K, V, C]) preorder() iter.Seq[*node[K, V]] {
	return func(yield func(*node[K, V]) bool) {
		mods := t.mods
		var stack []*node[K, V]
		if t.root != nil {
			stack = append(stack, t.root)
		}
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if x.left != nil {
				stack = append(stack, x.left)
			}
			if x.right != nil {
				stack = append(stack, x.right)
			}
			if !yield(x) {
				return
			}
			t.checkMods(mods)
		}
	}
}

// Drain removes every entry from the map and returns an iterator over
// the removed entries in no particular order. The map is empty as soon
// as Drain returns and may be reused during the iteration. The returned
// iterator is single use: ranging over it again yields nothing.
// Stopping early discards the entries not yet yielded.
func (t *tree[K, V, C]) Drain() iter.Seq2[K, V] {
	root := t.root
	log.Tracef("draining %d entries", t.size)
	t.root = nil
	t.size = 0
	t.mods++
	return func(yield func(K, V) bool) {
		var stack []*node[K, V]
		if root != nil {
			stack = append(stack, root)
			root = nil
		}
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if x.left != nil {
				stack = append(stack, x.left)
			}
			if x.right != nil {
				stack = append(stack, x.right)
			}
			x.left, x.right = nil, nil
			if !yield(x.key, x.val) {
				return
			}
		}
	}
}

// A step is an entry on the in-order traversal stack.
// A descend step walks x's left subtree before processing x;
// a process step yields x and then walks its right subtree.
type step[K, V any] struct {
	x       *node[K, V]
	descend bool
}

// Ordered returns an iterator over the entries of the map in
// increasing key order. The same modification rules as All apply.
func (t *tree[K, V, C]) Ordered() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		mods := t.mods
		var stack []step[K, V]
		if t.root != nil {
			stack = append(stack, step[K, V]{t.root, true})
		}
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x := s.x
			if s.descend {
				stack = append(stack, step[K, V]{x, false})
				if x.left != nil {
					stack = append(stack, step[K, V]{x.left, true})
				}
				continue
			}
			if x.right != nil {
				stack = append(stack, step[K, V]{x.right, true})
			}
			if !yield(x.key, x.val) {
				return
			}
			t.checkMods(mods)
		}
	}
}

// Keys returns an iterator over the keys in increasing order.
func (t *tree[K, V, C]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.Ordered() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in increasing key order.
func (t *tree[K, V, C]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.Ordered() {
			if !yield(v) {
				return
			}
		}
	}
}
