package derive

import (
	"bytes"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/resultdoc/go-sarif/structural"
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// scalarOps are the Ops of immutable values: cloning is a copy.
type scalarOps[V any] struct {
	equal   func(a, b V) bool
	hash    func(v V) uint64
	compare func(a, b V) int
}

func (o scalarOps[V]) Equal(a, b V) bool { return o.equal(a, b) }
func (o scalarOps[V]) Hash(v V) uint64 { return o.hash(v) }
func (o scalarOps[V]) Compare(a, b V) int { return o.compare(a, b) }
func (o scalarOps[V]) Clone(v V) V { return v }

var (
	// Strings compares ordinally, byte by byte, never by locale.
	Strings Ops[string] = scalarOps[string]{
		equal:   func(a, b string) bool { return a == b },
		hash:    structural.HashString,
		compare: strings.Compare,
	}

	Bools Ops[bool] = scalarOps[bool]{
		equal:   func(a, b bool) bool { return a == b },
		hash:    structural.HashBool,
		compare: structural.CompareBool,
	}

	// Floats is a total order: NaN sorts first and equals itself, -0 equals +0.
	Floats Ops[float64] = scalarOps[float64]{
		equal:   func(a, b float64) bool { return structural.CompareFloat(a, b) == 0 },
		hash:    structural.HashFloat,
		compare: structural.CompareFloat,
	}

	// UUIDs order by their bytes. uuid.Nil is the absent GUID and sorts first.
	UUIDs Ops[uuid.UUID] = scalarOps[uuid.UUID]{
		equal: func(a, b uuid.UUID) bool { return a == b },
		hash: func(v uuid.UUID) uint64 {
			if v == uuid.Nil {
				return 0
			}
			return structural.HashString(string(v[:]))
		},
		compare: func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) },
	}

	// Times compare instants, independent of location. The zero time is the
	// absent time and sorts first.
	Times Ops[time.Time] = scalarOps[time.Time]{
		equal: func(a, b time.Time) bool { return a.Equal(b) },
		hash: func(v time.Time) uint64 {
			if v.IsZero() {
				return 0
			}
			return uint64(v.UTC().UnixNano())
		},
		compare: func(a, b time.Time) int { return a.Compare(b) },
	}
)

// Ints returns the Ops of an integer type. Enumerations and flag sets compare
// by their integral value.
func Ints[I integer]() Ops[I] {
	return scalarOps[I]{
		equal:   func(a, b I) bool { return a == b },
		hash:    structural.HashInt[I],
		compare: func(a, b I) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			}
			return 0
		},
	}
}
