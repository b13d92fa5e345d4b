package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// A nil node sorts before any other node.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether a and b are structurally equal. Object key order
// does not matter.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	// Sub-rank: Int64 < Float64 < String
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}

	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return strings.Compare(a.Number, b.Number)
}

func numberSubRank(n *Node) int {
	if n.Int64 != nil {
		return 0
	}
	if n.Float64 != nil {
		return 1
	}
	return 2
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareObjects compares entries in key order: key, then value, entry by
// entry, with the shorter object first on a tie.
func compareObjects(a, b *Node) int {
	ai := keyOrder(a)
	bi := keyOrder(b)
	minLen := min(len(ai), len(bi))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Fields[ai[i]].String, b.Fields[bi[i]].String); c != 0 {
			return c
		}
		if c := Compare(a.Values[ai[i]], b.Values[bi[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ai), len(bi))
}

// keyOrder returns the entry indices of an object sorted by key.
func keyOrder(n *Node) []int {
	res := make([]int, len(n.Fields))
	for i := range res {
		res[i] = i
	}
	slices.SortStableFunc(res, func(i, j int) int {
		return strings.Compare(n.Fields[i].String, n.Fields[j].String)
	})
	return res
}

// NodeOps groups Equal, Hash, Compare and Clone so that nodes can be used
// as field values of derived node types.
var NodeOps nodeOps

type nodeOps struct{}

func (nodeOps) Equal(a, b *Node) bool { return Equal(a, b) }
func (nodeOps) Hash(n *Node) uint64 { return n.Hash() }
func (nodeOps) Compare(a, b *Node) int { return Compare(a, b) }
func (nodeOps) Clone(n *Node) *Node { return n.Clone() }
