// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treap

import "fmt"

// ErrorKind identifies a kind of broken invariant.
type ErrorKind int

const (
	// ErrKeyOrder indicates a key that is not between the keys of its
	// ancestors: some left descendant is not less than its ancestor,
	// or some right descendant is not greater.
	ErrKeyOrder ErrorKind = iota

	// ErrHeapOrder indicates a child whose priority exceeds its parent's.
	ErrHeapOrder

	// ErrSizeMismatch indicates that Len does not match the number of
	// reachable entries.
	ErrSizeMismatch
)

var errorKindStrings = map[ErrorKind]string{
	ErrKeyOrder:     "ErrKeyOrder",
	ErrHeapOrder:    "ErrHeapOrder",
	ErrSizeMismatch: "ErrSizeMismatch",
}

// String returns the ErrorKind as a human-readable name.
func (k ErrorKind) String() string {
	if s := errorKindStrings[k]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorKind (%d)", int(k))
}

// An InvariantError describes a map whose structure is inconsistent.
// It is returned by Verify and only occurs if a caller has corrupted
// the map, for example by using a comparison function that is not a
// strict weak order or by modifying a map from several goroutines.
type InvariantError struct {
	Kind        ErrorKind
	Description string
}

func (e *InvariantError) Error() string {
	return e.Description
}

func invariantError(kind ErrorKind, format string, args ...any) error {
	return &InvariantError{Kind: kind, Description: fmt.Sprintf(format, args...)}
}

// Verify checks that the tree is ordered by key, heap-ordered by
// priority, and holds Len entries. It returns an *InvariantError
// describing the first violation found, or nil.
func (t *tree[K, V, C]) Verify() error {
	err := t.verify()
	if err != nil {
		log.Debugf("verify: %v: %v", err, newLogClosure(t.Dump))
	}
	return err
}

func (t *tree[K, V, C]) verify() error {
	// lo and hi are the nearest ancestors x lies right and left of.
	type frame struct {
		x, lo, hi *node[K, V]
	}
	n := 0
	stack := []frame{{x: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x := f.x
		if x == nil {
			continue
		}
		n++
		if f.lo != nil && t.cmp.compare(f.lo.key, x.key) >= 0 {
			return invariantError(ErrKeyOrder, "treap: key %v in right subtree of %v", x.key, f.lo.key)
		}
		if f.hi != nil && t.cmp.compare(x.key, f.hi.key) >= 0 {
			return invariantError(ErrKeyOrder, "treap: key %v in left subtree of %v", x.key, f.hi.key)
		}
		for _, c := range [...]*node[K, V]{x.left, x.right} {
			if c != nil && c.pri > x.pri {
				return invariantError(ErrHeapOrder, "treap: key %v has priority %d above parent %v priority %d",
					c.key, c.pri, x.key, x.pri)
			}
		}
		stack = append(stack, frame{x.left, f.lo, x}, frame{x.right, x, f.hi})
	}
	if n != t.size {
		return invariantError(ErrSizeMismatch, "treap: Len is %d but %d entries are reachable", t.size, n)
	}
	return nil
}
