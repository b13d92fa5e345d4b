package structural

import "cmp"

// CompareBool orders false before true.
func CompareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

// CompareFloat is a total order on floats: NaN sorts first and is equal to
// itself, -0 equals +0.
func CompareFloat(a, b float64) int {
	return cmp.Compare(a, b)
}

// CompareOptional orders optional scalars with absent first.
func CompareOptional[V any](a, b *V, compare func(V, V) int) int {
	if c, ok := CompareRef(a, b); ok {
		return c
	}
	return compare(*a, *b)
}
