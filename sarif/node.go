package sarif

import (
	"cmp"
	"fmt"

	"github.com/resultdoc/go-sarif/derive"
)

// Node is implemented by every node type. Kind must not dereference its
// receiver so that it can be called on a nil node.
type Node interface {
	Kind() Kind
}

type nodeOps struct {
	name     string
	equal    func(a, b Node) bool
	hash     func(n Node) uint64
	compare  func(a, b Node) int
	clone    func(n Node) Node
	isNil    func(n Node) bool
	children func(n Node, fn func(Node) bool)
	diff     func(a, b Node, path string, fn func(derive.Difference))
}

// registry is written only during package initialization.
var registry = map[Kind]*nodeOps{}

// Register makes node type P, described by t, available to the Kind
// dispatched functions under kind k. It must be called during package
// initialization.
func Register[T any, P interface {
	*T
	Node
}](k Kind, t *derive.Type[T]) error {
	if _, ok := registry[k]; ok {
		return fmt.Errorf("%w: %d (%s)", ErrKindTaken, k, k)
	}
	registry[k] = &nodeOps{
		name: t.Name(),
		equal: func(a, b Node) bool {
			return t.Equal((*T)(a.(P)), (*T)(b.(P)))
		},
		hash: func(n Node) uint64 {
			return t.Hash((*T)(n.(P)))
		},
		compare: func(a, b Node) int {
			return t.Compare((*T)(a.(P)), (*T)(b.(P)))
		},
		clone: func(n Node) Node {
			return P(t.Clone((*T)(n.(P))))
		},
		isNil: func(n Node) bool {
			return (*T)(n.(P)) == nil
		},
		children: func(n Node, fn func(Node) bool) {
			t.Children((*T)(n.(P)), func(c any) bool {
				cn, ok := c.(Node)
				if !ok {
					return true
				}
				return fn(cn)
			})
		},
		diff: func(a, b Node, path string, fn func(derive.Difference)) {
			t.Diff((*T)(a.(P)), (*T)(b.(P)), path, fn)
		},
	}
	return nil
}

func mustRegister[T any, P interface {
	*T
	Node
}](k Kind, t *derive.Type[T]) {
	if err := Register[T, P](k, t); err != nil {
		panic(err)
	}
}

// CloneNode deep clones n, dispatching on n.Kind() rather than on the static
// type holding it; the result has the same Kind as n. It fails with
// derive.ErrInvalidArgument if n is nil and ErrUnknownKind if the kind was
// never registered.
func CloneNode(n Node) (Node, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: cannot clone absent node", derive.ErrInvalidArgument)
	}
	ops, ok := registry[n.Kind()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, n.Kind())
	}
	if ops.isNil(n) {
		return nil, fmt.Errorf("%w: cannot clone absent %s", derive.ErrInvalidArgument, ops.name)
	}
	return ops.clone(n), nil
}

// EqualNodes reports whether a and b are of the same kind and structurally
// equal. Nodes of unregistered kinds are equal only if identical.
func EqualNodes(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	ops, ok := registry[a.Kind()]
	if !ok {
		return a == b
	}
	return ops.equal(a, b)
}

// HashNode returns the hash of n under its kind's type, 0 for nil.
func HashNode(n Node) uint64 {
	if n == nil {
		return 0
	}
	ops, ok := registry[n.Kind()]
	if !ok {
		return 0
	}
	return ops.hash(n)
}

// CompareNodes orders nodes first by kind, then with the kind's comparator.
// nil sorts first.
func CompareNodes(a, b Node) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	ops, ok := registry[a.Kind()]
	if !ok {
		return 0
	}
	return ops.compare(a, b)
}

// DiffNodes calls fn for every value which differs between a and b, which
// must be of the same registered kind. Paths start with root.
func DiffNodes(a, b Node, root string, fn func(derive.Difference)) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: cannot diff absent node", derive.ErrInvalidArgument)
	}
	if a.Kind() != b.Kind() {
		return fmt.Errorf("%w: cannot diff %s against %s", derive.ErrInvalidArgument, a.Kind(), b.Kind())
	}
	ops, ok := registry[a.Kind()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, a.Kind())
	}
	ops.diff(a, b, root, fn)
	return nil
}
