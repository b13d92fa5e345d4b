package structural

// CompareRef is the reference fast path for ordering. When ok is true, c is
// the final result: identical references compare equal and an absent
// reference sorts before a present one. When ok is false both references are
// present and distinct and the caller must compare their contents.
func CompareRef[T any](a, b *T) (c int, ok bool) {
	switch {
	case a == b:
		return 0, true
	case a == nil:
		return -1, true
	case b == nil:
		return 1, true
	}
	return 0, false
}

// EqualRef is the reference fast path for equality, with the same meaning of
// ok as CompareRef.
func EqualRef[T any](a, b *T) (eq bool, ok bool) {
	switch {
	case a == b:
		return true, true
	case a == nil || b == nil:
		return false, true
	}
	return false, false
}
