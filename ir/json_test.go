package ir

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromJSON(t *testing.T) {
	tests := []struct {
		in   string
		want *Node
	}{
		{`null`, Null()},
		{`true`, FromBool(true)},
		{`12`, FromInt(12)},
		{`1.5`, FromFloat(1.5)},
		{`"s"`, FromString("s")},
		{`[1,"a"]`, FromSlice([]*Node{FromInt(1), FromString("a")})},
		{`{"b":1,"a":2}`, FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}, {Key: "b", Val: FromInt(1)}})},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FromJSON([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("FromJSON(%s) = %v, want %v", tt.in, ToAny(got), ToAny(tt.want))
			}
			d, err := json.Marshal(got)
			if err != nil {
				t.Fatal(err)
			}
			var back any
			if err := json.Unmarshal(d, &back); err != nil {
				t.Fatal(err)
			}
			var orig any
			if err := json.Unmarshal([]byte(tt.in), &orig); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(orig, back); diff != "" {
				t.Errorf("re-encoded value differs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromJSONError(t *testing.T) {
	_, err := FromJSON([]byte(`{`))
	if !errors.Is(err, ErrBadJSON) {
		t.Errorf("got %v, want ErrBadJSON", err)
	}
}
