package ir

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: nil < Null < Bool < Number < String < Array < Object
		{"nil < Null", nil, Null(), -1},
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number Comparison: Int < Float < String
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Float < StringNum", FromFloat(1.0), &Node{Type: NumberType, Number: "1e400"}, -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"NaN < Float", FromFloat(math.NaN()), FromFloat(-1), -1},
		{"NaN == NaN", FromFloat(math.NaN()), FromFloat(math.NaN()), 0},
		{"-0 == +0", FromFloat(math.Copysign(0, -1)), FromFloat(0), 0},

		// String Comparison is ordinal
		{"Upper < Lower", FromString("B"), FromString("a"), -1},
		{"String < String", FromString("a"), FromString("b"), -1},

		// Array Comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		// Object Comparison
		{"Empty Object == Empty Object", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Short Object < Long Object",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			-1},
		{"Object Key Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
			-1},
		{"Object Value Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
			-1},
		{"Object Key Order Ignored",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(2)}, {Key: "a", Val: FromInt(1)}}),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
			if tt.expected == 0 && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal nodes hash differently: %x != %x", tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestHash(t *testing.T) {
	if h := Hash(nil); h != 0 {
		t.Errorf("Hash(nil) = %x, want 0", h)
	}
	a := FromMap(map[string]*Node{"x": FromInt(1), "y": FromString("s")})
	b := FromKeyVals([]KeyVal{{Key: "y", Val: FromString("s")}, {Key: "x", Val: FromInt(1)}})
	if a.Hash() != b.Hash() {
		t.Errorf("object hash depends on entry order")
	}
	if FromInt(1).Hash() == FromFloat(1).Hash() {
		t.Errorf("int and float hash alike")
	}
	if FromString("a").Hash() == FromString("b").Hash() {
		t.Errorf("strings hash alike")
	}
}

func TestClone(t *testing.T) {
	src := FromMap(map[string]*Node{
		"list": FromSlice([]*Node{FromInt(1), FromFloat(2.5)}),
		"s":    FromString("x"),
	})
	c := src.Clone()
	if !Equal(src, c) {
		t.Fatalf("clone differs from source")
	}
	*Get(c, "list").Values[0].Int64 = 5
	Get(c, "list").Values = append(Get(c, "list").Values, Null())
	if got := *Get(src, "list").Values[0].Int64; got != 1 {
		t.Errorf("source changed through clone: %d", got)
	}
	if n := len(Get(src, "list").Values); n != 2 {
		t.Errorf("source list has %d elements", n)
	}
	if (*Node)(nil).Clone() != nil {
		t.Errorf("clone of nil is not nil")
	}
}

func TestVisit(t *testing.T) {
	n := FromMap(map[string]*Node{
		"a": FromSlice([]*Node{FromInt(1), FromString("x")}),
		"b": FromBool(true),
	})
	var pre, post []string
	err := n.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post = append(post, y.Type.String())
			return false, nil
		}
		pre = append(pre, y.Type.String())
		return y.Type != ArrayType, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Object", "Array", "Bool"}, pre); diff != "" {
		t.Errorf("pre (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Array", "Bool", "Object"}, post); diff != "" {
		t.Errorf("post (-want +got):\n%s", diff)
	}
}
