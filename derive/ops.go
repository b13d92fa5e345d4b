package derive

// EqualityComparer defines structural equality and a hash consistent with it:
// Equal(a, b) implies Hash(a) == Hash(b).
type EqualityComparer[V any] interface {
	Equal(a, b V) bool
	Hash(v V) uint64
}

// Comparator defines a total order. Compare returns a negative number, zero
// or a positive number.
type Comparator[V any] interface {
	Compare(a, b V) int
}

// Cloner produces copies which share no mutable state with the source.
type Cloner[V any] interface {
	Clone(v V) V
}

// Ops is the full set of operations needed for a value to be a field of a
// node type.
type Ops[V any] interface {
	EqualityComparer[V]
	Comparator[V]
	Cloner[V]
}

// Difference describes a value which differs between two nodes. From or To
// is nil when the value is absent on that side.
type Difference struct {
	Path string
	From any
	To   any
}

// differ is implemented by Ops which can report differences below the value
// itself rather than just the value.
type differ[V any] interface {
	diff(a, b V, path string, fn func(Difference))
}

// walker is implemented by Ops whose values are or contain nodes.
type walker[V any] interface {
	each(v V, fn func(any) bool) bool
}

func diffValue[V any](ops Ops[V], a, b V, path string, fn func(Difference)) {
	if d, ok := ops.(differ[V]); ok {
		d.diff(a, b, path, fn)
		return
	}
	if !ops.Equal(a, b) {
		fn(Difference{Path: path, From: a, To: b})
	}
}

func eachValue[V any](ops Ops[V], v V, fn func(any) bool) bool {
	if w, ok := ops.(walker[V]); ok {
		return w.each(v, fn)
	}
	return true
}
