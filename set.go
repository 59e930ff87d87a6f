// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"iter"
)

// A Set is a set of T ordered according to T's standard Go ordering.
// The zero value of a Set is an empty Set ready to use.
type Set[T cmp.Ordered] struct {
	m Map[T, struct{}]
}

// NewSet returns an empty Set configured by opts.
func NewSet[T cmp.Ordered](opts ...Option) *Set[T] {
	s := new(Set[T])
	s.m.init(opts)
	return s
}

// Len returns the number of items in s.
func (s *Set[T]) Len() int { return s.m.Len() }

// IsEmpty reports whether s has no items.
func (s *Set[T]) IsEmpty() bool { return s.m.IsEmpty() }

// Clear removes all items from s.
func (s *Set[T]) Clear() { s.m.Clear() }

// Contains reports whether item is in s.
func (s *Set[T]) Contains(item T) bool { return s.m.Contains(item) }

// Insert adds item to s and reports whether it was not already present.
func (s *Set[T]) Insert(item T) bool {
	_, replaced := s.m.Insert(item, struct{}{})
	return !replaced
}

// Remove deletes item from s and reports whether it was present.
func (s *Set[T]) Remove(item T) bool {
	_, removed := s.m.Remove(item)
	return removed
}

// All returns an iterator over the items of s in increasing order.
func (s *Set[T]) All() iter.Seq[T] { return s.m.Keys() }

// A SetFunc is a set of T ordered according to a comparison function.
// A SetFunc must be created with [NewSetFunc].
type SetFunc[T any] struct {
	m *MapFunc[T, struct{}]
}

// NewSetFunc returns an empty SetFunc ordered by cmp.
// See [NewFunc] for the requirements on cmp.
func NewSetFunc[T any](cmp func(a, b T) int, opts ...Option) *SetFunc[T] {
	return &SetFunc[T]{m: NewFunc[T, struct{}](cmp, opts...)}
}

func (s *SetFunc[T]) Len() int { return s.m.Len() }
func (s *SetFunc[T]) IsEmpty() bool { return s.m.IsEmpty() }
func (s *SetFunc[T]) Clear() { s.m.Clear() }
func (s *SetFunc[T]) Contains(item T) bool { return s.m.Contains(item) }

func (s *SetFunc[T]) Insert(item T) bool {
	_, replaced := s.m.Insert(item, struct{}{})
	return !replaced
}

func (s *SetFunc[T]) Remove(item T) bool {
	_, removed := s.m.Remove(item)
	return removed
}

func (s *SetFunc[T]) All() iter.Seq[T] { return s.m.Keys() }
