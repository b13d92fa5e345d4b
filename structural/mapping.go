package structural

import (
	"maps"
	"slices"
	"strings"
)

// SortedKeys returns the keys of m in ordinal order.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	return slices.Sorted(maps.Keys(m))
}

// CompareMap orders two mappings: keys are sorted, the key sequences are
// compared, then values are compared in key order.
func CompareMap[M ~map[string]V, V any](a, b M, compare func(V, V) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	aKeys, bKeys := SortedKeys(a), SortedKeys(b)
	if c := CompareSlice(aKeys, bKeys, strings.Compare); c != 0 {
		return c
	}
	for _, k := range aKeys {
		if c := compare(a[k], b[k]); c != 0 {
			return c
		}
	}
	return 0
}

// EqualMap reports whether two mappings hold the same keys mapped to equal
// values, regardless of insertion order.
func EqualMap[M ~map[string]V, V any](a, b M, equal func(V, V) bool) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if !equal(av, bv) {
			return false
		}
	}
	return true
}

// HashMap combines key and value hashes of every entry with XOR so the result
// does not depend on iteration order. An absent mapping hashes to 0.
func HashMap[M ~map[string]V, V any](m M, hash func(V) uint64) uint64 {
	if m == nil {
		return 0
	}
	var x uint64
	for k, v := range m {
		x ^= HashString(k)
		x ^= hash(v)
	}
	return x
}

// CloneMap allocates a new mapping holding clone of every value.
func CloneMap[M ~map[string]V, V any](m M, clone func(V) V) M {
	if m == nil {
		return nil
	}
	res := make(M, len(m))
	for k, v := range m {
		res[k] = clone(v)
	}
	return res
}
