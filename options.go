// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treap

import "math/rand/v2"

type options struct {
	src rand.Source // priority source
}

// An Option configures a map or set at construction.
type Option func(*options)

// WithSource makes the map draw node priorities from src instead of
// the math/rand/v2 top-level source. A source with a fixed seed makes
// the shape of the tree reproducible for a given sequence of operations.
//
// The map calls src on every Insert and does not synchronize access to it.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithSeed is shorthand for WithSource(rand.NewPCG(seed1, seed2)).
func WithSeed(seed1, seed2 uint64) Option {
	return WithSource(rand.NewPCG(seed1, seed2))
}
