package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FromJSON parses a plain JSON value.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadJSON, err)
	}
	return FromAny(v)
}

// FromAny converts the values produced by encoding/json (and Go ints) to a
// node.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return fromNumber(string(x)), nil
	case []any:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(x))}
		for i := range x {
			elt, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			res.Values[i] = elt
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, xv := range x {
			val, err := FromAny(xv)
			if err != nil {
				return nil, err
			}
			m[k] = val
		}
		return FromMap(m), nil
	}
	return nil, fmt.Errorf("%w: unsupported type %T", ErrBadJSON, v)
}

func fromNumber(s string) *Node {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FromFloat(f)
	}
	return &Node{Type: NumberType, Number: s}
}

// ToAny converts a node to the values encoding/json produces.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	}
	return nil
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToAny(y))
}

func (y *Node) UnmarshalJSON(d []byte) error {
	n, err := FromJSON(d)
	if err != nil {
		return err
	}
	*y = *n
	return nil
}
