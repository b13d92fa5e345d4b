package derive

import "time"

// Field describes one field of a node type T: its name and how its value is
// compared, hashed, cloned and diffed. Fields are built with Value or one of
// the helpers wrapping it.
type Field[T any] struct {
	name    string
	equal   func(a, b *T) bool
	hash    func(x *T) uint64
	compare func(a, b *T) int
	clone   func(dst, src *T)
	diff    func(a, b *T, path string, fn func(Difference))
	each    func(x *T, fn func(any) bool) bool
}

// Name returns the field name.
func (f Field[T]) Name() string {
	return f.name
}

// Value declares a field whose value is accessed through get and handled by
// ops. get must return a pointer into its argument.
func Value[T, V any](name string, get func(*T) *V, ops Ops[V]) Field[T] {
	return Field[T]{
		name: name,
		equal: func(a, b *T) bool {
			return ops.Equal(*get(a), *get(b))
		},
		hash: func(x *T) uint64 {
			return ops.Hash(*get(x))
		},
		compare: func(a, b *T) int {
			return ops.Compare(*get(a), *get(b))
		},
		clone: func(dst, src *T) {
			*get(dst) = ops.Clone(*get(src))
		},
		diff: func(a, b *T, path string, fn func(Difference)) {
			diffValue(ops, *get(a), *get(b), path+"."+name, fn)
		},
		each: func(x *T, fn func(any) bool) bool {
			return eachValue(ops, *get(x), fn)
		},
	}
}

// Nested declares an owned, optional child node.
func Nested[T, U any](name string, get func(*T) **U, ty *Type[U]) Field[T] {
	return Value[T, *U](name, get, ty)
}

// Seq declares an ordered sequence field.
func Seq[T any, S ~[]E, E any](name string, get func(*T) *S, elem Ops[E]) Field[T] {
	return Value(name, get, SliceOf[S](elem))
}

// Map declares a string keyed mapping field.
func Map[T any, M ~map[string]V, V any](name string, get func(*T) *M, elem Ops[V]) Field[T] {
	return Value(name, get, MapOf[M](elem))
}

// Optional declares a scalar field held by pointer, nil being absent.
func Optional[T, V any](name string, get func(*T) **V, elem Ops[V]) Field[T] {
	return Value(name, get, OptionalOf(elem))
}

func String[T any](name string, get func(*T) *string) Field[T] {
	return Value(name, get, Strings)
}

func Bool[T any](name string, get func(*T) *bool) Field[T] {
	return Value(name, get, Bools)
}

func Float[T any](name string, get func(*T) *float64) Field[T] {
	return Value(name, get, Floats)
}

func Time[T any](name string, get func(*T) *time.Time) Field[T] {
	return Value(name, get, Times)
}

// Int declares an integer field. Enumerations use Int as well.
func Int[T any, I integer](name string, get func(*T) *I) Field[T] {
	return Value(name, get, Ints[I]())
}
