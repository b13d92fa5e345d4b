package ir

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit hash of the node, consistent with Equal and stable
// across processes. A nil node hashes to 0.
func (n *Node) Hash() uint64 {
	if n == nil {
		return 0
	}

	h := xxhash.New()
	h.Write([]byte{byte(n.Type)})

	var b [8]byte
	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case NumberType:
		if n.Int64 != nil {
			binary.LittleEndian.PutUint64(b[:], uint64(*n.Int64))
			h.Write(b[:])
		} else if n.Float64 != nil {
			binary.LittleEndian.PutUint64(b[:], floatBits(*n.Float64))
			h.Write([]byte{1})
			h.Write(b[:])
		} else {
			h.Write([]byte{2})
			h.WriteString(n.Number)
		}
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		// xor so that the order of entries does not matter.
		var x uint64
		for i, field := range n.Fields {
			x ^= xxhash.Sum64String(field.String) ^ n.Values[i].Hash()
		}
		binary.LittleEndian.PutUint64(b[:], x)
		h.Write(b[:])
	}
	return h.Sum64()
}

// Hash is the function form of (*Node).Hash.
func Hash(n *Node) uint64 {
	return n.Hash()
}

// floatBits agrees with cmp.Compare, which Compare uses for floats: -0
// equals +0 and NaN equals NaN.
func floatBits(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return 0x7ff8000000000001
	}
	return math.Float64bits(f)
}
