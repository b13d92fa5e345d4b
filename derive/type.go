package derive

import (
	"fmt"
	"slices"

	"github.com/resultdoc/go-sarif/structural"
)

// Type holds the field list of node type T and implements Ops[*T] from it.
type Type[T any] struct {
	name   string
	fields []Field[T]
}

// New declares a node type with the given fields, in comparison order.
func New[T any](name string, fields ...Field[T]) *Type[T] {
	return &Type[T]{name: name, fields: fields}
}

// Define sets the fields of a type declared with New and no fields. It exists
// for recursive types, whose fields refer to the type itself, and must be
// called during package initialization.
func (t *Type[T]) Define(fields ...Field[T]) *Type[T] {
	if len(t.fields) != 0 {
		panic(fmt.Sprintf("derive: %s already defined", t.name))
	}
	t.fields = fields
	return t
}

// Name returns the name given to New.
func (t *Type[T]) Name() string {
	return t.name
}

// FieldNames returns the field names in declaration order.
func (t *Type[T]) FieldNames() []string {
	res := make([]string, len(t.fields))
	for i := range t.fields {
		res[i] = t.fields[i].name
	}
	return res
}

func (t *Type[T]) Equal(a, b *T) bool {
	if eq, ok := structural.EqualRef(a, b); ok {
		return eq
	}
	for i := range t.fields {
		if !t.fields[i].equal(a, b) {
			return false
		}
	}
	return true
}

// Hash returns 0 for nil; otherwise Seed folded with every field hash.
func (t *Type[T]) Hash(x *T) uint64 {
	if x == nil {
		return 0
	}
	res := structural.Seed
	for i := range t.fields {
		res = structural.Fold(res, t.fields[i].hash(x))
	}
	return res
}

func (t *Type[T]) Compare(a, b *T) int {
	if c, ok := structural.CompareRef(a, b); ok {
		return c
	}
	for i := range t.fields {
		if c := t.fields[i].compare(a, b); c != 0 {
			return c
		}
	}
	return 0
}

// Clone returns a deep copy of x, or nil if x is nil. Fields not declared
// are copied shallowly.
func (t *Type[T]) Clone(x *T) *T {
	if x == nil {
		return nil
	}
	res := new(T)
	*res = *x
	for i := range t.fields {
		t.fields[i].clone(res, x)
	}
	return res
}

// DeepClone is Clone for callers which require a node: it fails with
// ErrInvalidArgument if x is nil.
func (t *Type[T]) DeepClone(x *T) (*T, error) {
	if x == nil {
		return nil, fmt.Errorf("%w: cannot clone absent %s", ErrInvalidArgument, t.name)
	}
	return t.Clone(x), nil
}

// Sort sorts s in place, stably, by Compare.
func (t *Type[T]) Sort(s []*T) {
	slices.SortStableFunc(s, t.Compare)
}

// Diff calls fn for each value which differs between a and b. path names a
// and b, and is extended with field names, indices and keys.
func (t *Type[T]) Diff(a, b *T, path string, fn func(Difference)) {
	t.diff(a, b, path, fn)
}

func (t *Type[T]) diff(a, b *T, path string, fn func(Difference)) {
	if a == b {
		return
	}
	if a == nil || b == nil {
		fn(Difference{Path: path, From: absentOr(a == nil, a), To: absentOr(b == nil, b)})
		return
	}
	for i := range t.fields {
		t.fields[i].diff(a, b, path, fn)
	}
}

// Children calls fn with each node directly held by x, in field order,
// sequences in order and mappings in key order. It stops when fn returns
// false.
func (t *Type[T]) Children(x *T, fn func(any) bool) {
	if x == nil {
		return
	}
	for i := range t.fields {
		if !t.fields[i].each(x, fn) {
			return
		}
	}
}

func (t *Type[T]) each(x *T, fn func(any) bool) bool {
	if x == nil {
		return true
	}
	return fn(x)
}
