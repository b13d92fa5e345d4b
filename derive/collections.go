package derive

import (
	"strconv"

	"github.com/resultdoc/go-sarif/structural"
)

type optionalOps[V any] struct {
	elem Ops[V]
}

// OptionalOf returns the Ops of an optional value held by pointer. A nil
// pointer is absent.
func OptionalOf[V any](elem Ops[V]) Ops[*V] {
	return optionalOps[V]{elem: elem}
}

func (o optionalOps[V]) Equal(a, b *V) bool {
	if eq, ok := structural.EqualRef(a, b); ok {
		return eq
	}
	return o.elem.Equal(*a, *b)
}

func (o optionalOps[V]) Hash(v *V) uint64 {
	if v == nil {
		return 0
	}
	return o.elem.Hash(*v)
}

func (o optionalOps[V]) Compare(a, b *V) int {
	return structural.CompareOptional(a, b, o.elem.Compare)
}

func (o optionalOps[V]) Clone(v *V) *V {
	if v == nil {
		return nil
	}
	c := o.elem.Clone(*v)
	return &c
}

func (o optionalOps[V]) diff(a, b *V, path string, fn func(Difference)) {
	switch {
	case a == nil && b == nil:
	case a == nil:
		fn(Difference{Path: path, To: *b})
	case b == nil:
		fn(Difference{Path: path, From: *a})
	default:
		diffValue(o.elem, *a, *b, path, fn)
	}
}

type sliceOps[S ~[]E, E any] struct {
	elem Ops[E]
}

// SliceOf returns the Ops of a sequence of values with the given element Ops.
func SliceOf[S ~[]E, E any](elem Ops[E]) Ops[S] {
	return sliceOps[S, E]{elem: elem}
}

func (o sliceOps[S, E]) Equal(a, b S) bool {
	return structural.EqualSlice(a, b, o.elem.Equal)
}

func (o sliceOps[S, E]) Hash(s S) uint64 {
	return structural.HashSlice(s, o.elem.Hash)
}

func (o sliceOps[S, E]) Compare(a, b S) int {
	return structural.CompareSlice(a, b, o.elem.Compare)
}

func (o sliceOps[S, E]) Clone(s S) S {
	return structural.CloneSlice(s, o.elem.Clone)
}

func (o sliceOps[S, E]) diff(a, b S, path string, fn func(Difference)) {
	if (a == nil) != (b == nil) {
		fn(Difference{Path: path, From: absentOr(a == nil, a), To: absentOr(b == nil, b)})
		return
	}
	n := min(len(a), len(b))
	for i := range n {
		diffValue(o.elem, a[i], b[i], path+"["+strconv.Itoa(i)+"]", fn)
	}
	for i := n; i < len(a); i++ {
		fn(Difference{Path: path + "[" + strconv.Itoa(i) + "]", From: a[i]})
	}
	for i := n; i < len(b); i++ {
		fn(Difference{Path: path + "[" + strconv.Itoa(i) + "]", To: b[i]})
	}
}

func (o sliceOps[S, E]) each(s S, fn func(any) bool) bool {
	for i := range s {
		if !eachValue(o.elem, s[i], fn) {
			return false
		}
	}
	return true
}

type mapOps[M ~map[string]V, V any] struct {
	elem Ops[V]
}

// MapOf returns the Ops of a string keyed mapping with the given value Ops.
// Equality and hashing ignore insertion order.
func MapOf[M ~map[string]V, V any](elem Ops[V]) Ops[M] {
	return mapOps[M, V]{elem: elem}
}

func (o mapOps[M, V]) Equal(a, b M) bool {
	return structural.EqualMap(a, b, o.elem.Equal)
}

func (o mapOps[M, V]) Hash(m M) uint64 {
	return structural.HashMap(m, o.elem.Hash)
}

func (o mapOps[M, V]) Compare(a, b M) int {
	return structural.CompareMap(a, b, o.elem.Compare)
}

func (o mapOps[M, V]) Clone(m M) M {
	return structural.CloneMap(m, o.elem.Clone)
}

func (o mapOps[M, V]) diff(a, b M, path string, fn func(Difference)) {
	if (a == nil) != (b == nil) {
		fn(Difference{Path: path, From: absentOr(a == nil, a), To: absentOr(b == nil, b)})
		return
	}
	keys := structural.SortedKeys(a)
	for _, k := range structural.SortedKeys(b) {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	for _, k := range keys {
		kPath := path + "[" + strconv.Quote(k) + "]"
		av, aok := a[k]
		bv, bok := b[k]
		switch {
		case !aok:
			fn(Difference{Path: kPath, To: bv})
		case !bok:
			fn(Difference{Path: kPath, From: av})
		default:
			diffValue(o.elem, av, bv, kPath, fn)
		}
	}
}

func (o mapOps[M, V]) each(m M, fn func(any) bool) bool {
	for _, k := range structural.SortedKeys(m) {
		if !eachValue(o.elem, m[k], fn) {
			return false
		}
	}
	return true
}

// absentOr returns nil for an absent value so that Difference holds an
// untyped nil rather than a typed nil collection.
func absentOr(absent bool, v any) any {
	if absent {
		return nil
	}
	return v
}
