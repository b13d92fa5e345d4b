package sarif

import (
	"encoding/json"

	"github.com/resultdoc/go-sarif/derive"
	"github.com/resultdoc/go-sarif/ir"
)

// PropertyBag holds extension properties of a node. Its keys are unordered:
// two bags with the same entries are equal and hash alike whatever order the
// entries were added in.
type PropertyBag map[string]*ir.Node

// Set sets key to v, allocating the bag if needed.
func (p *PropertyBag) Set(key string, v *ir.Node) {
	if *p == nil {
		*p = PropertyBag{}
	}
	(*p)[key] = v
}

// SetString sets key to the string s.
func (p *PropertyBag) SetString(key, s string) {
	p.Set(key, ir.FromString(s))
}

// GetString returns the string value of key, if key holds a string.
func (p PropertyBag) GetString(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil || v.Type != ir.StringType {
		return "", false
	}
	return v.String, true
}

// Tags returns the "tags" property as strings.
func (p PropertyBag) Tags() []string {
	v, ok := p["tags"]
	if !ok || v == nil || v.Type != ir.ArrayType {
		return nil
	}
	var res []string
	for _, t := range v.Values {
		if t.Type == ir.StringType {
			res = append(res, t.String)
		}
	}
	return res
}

// AsAny converts the bag to plain JSON values.
func (p PropertyBag) AsAny() map[string]any {
	if p == nil {
		return nil
	}
	res := make(map[string]any, len(p))
	for k, v := range p {
		res[k] = ir.ToAny(v)
	}
	return res
}

// properties declares the "properties" field of a node type.
func properties[T any](get func(*T) *PropertyBag) derive.Field[T] {
	return derive.Map("properties", get, ir.NodeOps)
}

func marshalStrings(ss []string) ([]byte, error) {
	return json.Marshal(ss)
}

func unmarshalStrings(d []byte) ([]string, error) {
	var res []string
	if err := json.Unmarshal(d, &res); err != nil {
		return nil, err
	}
	return res, nil
}
