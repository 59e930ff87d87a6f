// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Treapdemo exercises a treap map: a short fixed scenario followed by a
// randomized run of inserts and removes whose result is checked
// against the treap invariants.
package main

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/davecgh/go-spew/spew"
	"rsc.io/treap"
)

var log btclog.Logger

func main() {
	cfg, _, err := loadConfig()
	if err != nil {
		os.Exit(1)
	}

	backend := btclog.NewBackend(os.Stdout)
	level, _ := btclog.LevelFromString(cfg.DebugLevel)
	log = backend.Logger("DEMO")
	log.SetLevel(level)
	tlog := backend.Logger("TRAP")
	tlog.SetLevel(level)
	treap.UseLogger(tlog)

	var opts []treap.Option
	if cfg.Seed != 0 {
		opts = append(opts, treap.WithSeed(cfg.Seed, cfg.Seed))
	}

	scenario(opts)
	if err := churn(cfg, opts); err != nil {
		log.Errorf("churn: %v", err)
		os.Exit(1)
	}
}

// scenario walks a small map through every kind of access.
func scenario(opts []treap.Option) {
	m := treap.New[int, string](opts...)
	m.Insert(5, "hej")
	m.Insert(10, "foo")
	m.Insert(2, "bar")
	m.Insert(8, "trolol")
	m.Insert(11, "fisk")
	m.Remove(8)
	for i := 2; i < 19; i++ {
		m.Insert(i, "test")
	}

	fmt.Println(m.Insert(2, "bar2"))
	fmt.Println(m.Get(2))
	fmt.Println(m.Get(3))

	for k, v := range m.All() {
		fmt.Printf("key: %d, val: %s\n", k, v)
	}
	fmt.Println("in order:")
	for k, v := range m.Ordered() {
		fmt.Printf("key: %d, val: %s\n", k, v)
	}
	for k, v := range m.Drain() {
		fmt.Printf("i own key: %d, val: %s\n", k, v)
	}

	r := treap.New[int, int](opts...)
	r.Extend(maps.All(map[int]int{1: 200, 2: 120, 3: 330}))
	for k, v := range r.AllPtr() {
		*v += k
	}
	fmt.Println(r.Get(2))
}

// churn inserts cfg.NumKeys keys in random order, removes every other
// one, and verifies the result.
func churn(cfg *config, opts []treap.Option) error {
	m := treap.New[int, int](opts...)
	for i, k := range rand.Perm(cfg.NumKeys) {
		m.Insert(k, i)
	}
	log.Infof("inserted %d keys, depth %d", m.Len(), m.Depth())

	for k := 0; k < cfg.NumKeys; k += 2 {
		if _, ok := m.Remove(k); !ok {
			return fmt.Errorf("key %d missing", k)
		}
	}
	log.Infof("removed even keys, %d left, depth %d", m.Len(), m.Depth())

	if err := m.Verify(); err != nil {
		return err
	}
	if cfg.Dump {
		type entry struct{ Key, Val int }
		var entries []entry
		for k, v := range m.Ordered() {
			entries = append(entries, entry{k, v})
		}
		spew.Dump(entries)
	}
	return nil
}
