// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treap_test

import (
	"fmt"
	"slices"

	"rsc.io/treap"
)

func Example() {
	m := treap.New[int, string]()
	m.Insert(5, "hej")
	m.Insert(10, "foo")
	m.Insert(2, "bar")
	m.Insert(8, "trolol")
	m.Insert(11, "fisk")

	fmt.Println(m.Remove(8))
	fmt.Println(slices.Collect(m.Keys()))
	fmt.Println(m.Insert(2, "bar2"))
	v, ok := m.Get(3)
	fmt.Printf("%q %v\n", v, ok)
	fmt.Println(m.Len())
	// Output:
	// trolol true
	// [2 5 10 11]
	// bar true
	// "" false
	// 4
}

func ExampleMap_Ordered() {
	var m treap.Map[string, int]
	m.Insert("yellow", 5)
	m.Insert("blue", 3)
	m.Insert("green", 8)
	for k, v := range m.Ordered() {
		fmt.Println(k, v)
	}
	// Output:
	// blue 3
	// green 8
	// yellow 5
}

func ExampleMap_AllPtr() {
	m := treap.New[int, int](treap.WithSeed(1, 2))
	m.Insert(1, 200)
	m.Insert(2, 120)
	m.Insert(3, 330)
	for k, v := range m.AllPtr() {
		*v += k
	}
	fmt.Println(m.At(2))
	// Output:
	// 122
}

func ExampleSet() {
	s := treap.NewSet[int]()
	fmt.Println(s.Insert(5), s.Insert(5))
	fmt.Println(s.Contains(5), s.Len())
	fmt.Println(s.Remove(5), s.Remove(5))
	// Output:
	// true false
	// true 1
	// true false
}
