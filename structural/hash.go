package structural

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

const (
	// Seed starts every node hash.
	Seed uint64 = 17
	// Prime multiplies the accumulator before each field is folded in.
	Prime uint64 = 31
)

// Fold folds h into acc as acc*Prime + h. Overflow wraps.
func Fold(acc, h uint64) uint64 {
	return acc*Prime + h
}

// HashString hashes s with xxhash. The empty string is the absent string
// value and hashes to 0.
func HashString(s string) uint64 {
	if s == "" {
		return 0
	}
	return xxhash.Sum64String(s)
}

func HashBool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// HashFloat is consistent with CompareFloat: -0 and +0 hash alike and so do
// all NaNs.
func HashFloat(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return 0x7ff8000000000001
	}
	return math.Float64bits(f)
}

func HashInt[I ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](i I) uint64 {
	return uint64(i)
}
