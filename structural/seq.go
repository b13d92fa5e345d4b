package structural

import "cmp"

// CompareSlice orders two sequences lexicographically using compare for the
// elements. Absent < empty < non-empty.
func CompareSlice[S ~[]E, E any](a, b S, compare func(E, E) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if sameSlice(a, b) {
		return 0
	}
	n := min(len(a), len(b))
	for i := range n {
		if c := compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// EqualSlice reports whether two sequences have the same length and pairwise
// equal elements. An absent sequence is equal only to another absent one.
func EqualSlice[S ~[]E, E any](a, b S, equal func(E, E) bool) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	if sameSlice(a, b) {
		return true
	}
	for i := range a {
		if !equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// HashSlice hashes a sequence order-dependently. An absent sequence hashes to
// 0 and an empty one to Seed.
func HashSlice[S ~[]E, E any](s S, hash func(E) uint64) uint64 {
	if s == nil {
		return 0
	}
	res := Seed
	for i := range s {
		res = Fold(res, hash(s[i]))
	}
	return res
}

// CloneSlice allocates a new sequence holding clone of every element. An
// absent sequence stays absent and an empty one stays empty.
func CloneSlice[S ~[]E, E any](s S, clone func(E) E) S {
	if s == nil {
		return nil
	}
	res := make(S, len(s))
	for i := range s {
		res[i] = clone(s[i])
	}
	return res
}

func sameSlice[S ~[]E, E any](a, b S) bool {
	return len(a) == len(b) && len(a) != 0 && &a[0] == &b[0]
}
