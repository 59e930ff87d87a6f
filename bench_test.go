// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"math/rand/v2"
	"testing"

	"github.com/google/btree"
	"github.com/openacid/testkeys"
)

// A mapper is the common surface of the maps compared below.
type mapper[K cmp.Ordered] interface {
	Set(key, val K)
	Get(key K) (K, bool)
	Delete(key K)
}

type treapMapper[K cmp.Ordered] struct{ m *Map[K, K] }

func (t treapMapper[K]) Set(key, val K)      { t.m.Insert(key, val) }
func (t treapMapper[K]) Get(key K) (K, bool) { return t.m.Get(key) }
func (t treapMapper[K]) Delete(key K)        { t.m.Remove(key) }

type pair[K cmp.Ordered] struct{ key, val K }

type btreeMapper[K cmp.Ordered] struct{ t *btree.BTreeG[pair[K]] }

func (b btreeMapper[K]) Set(key, val K) { b.t.ReplaceOrInsert(pair[K]{key, val}) }
func (b btreeMapper[K]) Delete(key K)   { b.t.Delete(pair[K]{key: key}) }

func (b btreeMapper[K]) Get(key K) (K, bool) {
	p, ok := b.t.Get(pair[K]{key: key})
	return p.val, ok
}

type builtinMapper[K cmp.Ordered] map[K]K

func (m builtinMapper[K]) Set(key, val K) { m[key] = val }
func (m builtinMapper[K]) Delete(key K)   { delete(m, key) }

func (m builtinMapper[K]) Get(key K) (K, bool) {
	v, ok := m[key]
	return v, ok
}

func mappers[K cmp.Ordered]() []struct {
	name string
	new  func() mapper[K]
} {
	return []struct {
		name string
		new  func() mapper[K]
	}{
		{"treap", func() mapper[K] { return treapMapper[K]{New[K, K](WithSeed(1, 2))} }},
		{"btree", func() mapper[K] {
			return btreeMapper[K]{btree.NewG[pair[K]](32, func(a, b pair[K]) bool { return a.key < b.key })}
		}},
		{"builtin", func() mapper[K] { return builtinMapper[K]{} }},
	}
}

func benchMaps(b *testing.B, bench func(b *testing.B, newMap func() mapper[int])) {
	for _, m := range mappers[int]() {
		b.Run(m.name, func(b *testing.B) { bench(b, m.new) })
	}
}

func BenchmarkInsert500(b *testing.B) {
	benchMaps(b, func(b *testing.B, newMap func() mapper[int]) {
		for range b.N {
			m := newMap()
			for i := range 500 {
				m.Set(i, i)
			}
		}
	})
}

func BenchmarkGetRandRand(b *testing.B) {
	benchMaps(b, func(b *testing.B, newMap func() mapper[int]) {
		const N = 100000
		m := newMap()
		rand := rand.New(rand.NewPCG(1, 1))
		perm := rand.Perm(N)
		for _, v := range rand.Perm(N) {
			m.Set(v, v)
		}
		perm = rand.Perm(N)
		b.ResetTimer()
		n := 0
		for range b.N {
			m.Get(perm[n])
			n++
			if n == N {
				n = 0
			}
		}
	})
}

func BenchmarkGetSeqRand(b *testing.B) {
	benchMaps(b, func(b *testing.B, newMap func() mapper[int]) {
		const N = 100000
		rand := rand.New(rand.NewPCG(1, 1))
		m := newMap()
		for v := range N {
			m.Set(v, v)
		}
		perm := rand.Perm(N)
		b.ResetTimer()
		n := 0
		for range b.N {
			m.Get(perm[n])
			n++
			if n == N {
				n = 0
			}
		}
	})
}

func BenchmarkSetDelete(b *testing.B) {
	benchMaps(b, func(b *testing.B, newMap func() mapper[int]) {
		const N = 100000
		perm := rand.Perm(N)
		perm2 := rand.Perm(N)
		m := newMap()
		b.ResetTimer()
		n := 0
		for range b.N {
			if n < N {
				m.Set(perm[n], perm[n])
			} else {
				m.Delete(perm2[n-N])
			}
			n++
			if n == 2*N {
				n = 0
			}
		}
	})
}

func BenchmarkOrdered(b *testing.B) {
	const N = 100000
	m := New[int, int](WithSeed(1, 1))
	for _, v := range rand.Perm(N) {
		m.Insert(v, v)
	}
	b.ResetTimer()
	for range b.N {
		for range m.Ordered() {
		}
	}
}

var keyCache = map[string][]string{}

func getKeys(fn string) []string {
	ks, ok := keyCache[fn]
	if !ok {
		ks = testkeys.Load(fn)
		keyCache[fn] = ks
	}
	return ks
}

// BenchmarkWordsInsert inserts real-world string key sets.
func BenchmarkWordsInsert(b *testing.B) {
	for _, fn := range testkeys.AssetNames() {
		keys := getKeys(fn)
		if len(keys) < 1000 {
			continue
		}
		for _, m := range mappers[string]() {
			b.Run(fn+"/"+m.name, func(b *testing.B) {
				for range b.N {
					mm := m.new()
					for _, k := range keys {
						mm.Set(k, k)
					}
				}
			})
		}
	}
}
