package x_radix_test

import (
	"fmt"

	"github.com/rskv-p/rtree/pkg/x_radix"
)

func ExampleTree_Prefix() {
	t, err := x_radix.New[int](38, nil)
	if err != nil {
		panic(err)
	}
	for i, k := range []string{"romane", "romanus", "romulus", "rubens", "ruber"} {
		_ = t.Set([]byte(k), i)
	}

	it, err := t.Prefix([]byte("rom"))
	if err != nil {
		panic(err)
	}
	for it.Advance() {
		fmt.Printf("%s=%d\n", it.Key(), it.Value())
	}
	// Output:
	// romane=0
	// romanus=1
	// romulus=2
}

func ExampleTree_Map() {
	t, _ := x_radix.New[string](38, nil)
	_ = t.Set([]byte("b"), "second")
	_ = t.Set([]byte("a"), "first")
	_ = t.Set([]byte("ab"), "between")

	t.Map(func(key []byte, value string) {
		fmt.Printf("%s: %s\n", key, value)
	})
	// Output:
	// a: first
	// ab: between
	// b: second
}
