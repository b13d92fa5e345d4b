package derive

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/resultdoc/go-sarif/structural"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leaf struct {
	Name  string
	Count int
}

var leafType = New[leaf]("leaf",
	String("name", func(l *leaf) *string { return &l.Name }),
	Int("count", func(l *leaf) *int { return &l.Count }),
)

type tree struct {
	ID       uuid.UUID
	Label    string
	Weight   float64
	Limit    *float64
	At       time.Time
	Enabled  bool
	Leaf     *leaf
	Leaves   []*leaf
	Tags     []string
	Attrs    map[string]string
	Children []*tree
	scratch  int
}

var treeType = New[tree]("tree")

func init() {
	treeType.Define(
		Value("id", func(t *tree) *uuid.UUID { return &t.ID }, UUIDs),
		String("label", func(t *tree) *string { return &t.Label }),
		Float("weight", func(t *tree) *float64 { return &t.Weight }),
		Optional("limit", func(t *tree) **float64 { return &t.Limit }, Floats),
		Time("at", func(t *tree) *time.Time { return &t.At }),
		Bool("enabled", func(t *tree) *bool { return &t.Enabled }),
		Nested("leaf", func(t *tree) **leaf { return &t.Leaf }, leafType),
		Seq("leaves", func(t *tree) *[]*leaf { return &t.Leaves }, leafType),
		Seq("tags", func(t *tree) *[]string { return &t.Tags }, Strings),
		Map("attrs", func(t *tree) *map[string]string { return &t.Attrs }, Strings),
		Seq("children", func(t *tree) *[]*tree { return &t.Children }, treeType),
	)
}

func sample() *tree {
	limit := 2.5
	return &tree{
		ID:      uuid.MustParse("6f1c2a4e-9d0b-4c33-8a51-2f7e0d9b1c11"),
		Label:   "root",
		Weight:  1.5,
		Limit:   &limit,
		At:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Enabled: true,
		Leaf:    &leaf{Name: "l", Count: 1},
		Leaves:  []*leaf{{Name: "a", Count: 1}, {Name: "b", Count: 2}},
		Tags:    []string{"x", "y"},
		Attrs:   map[string]string{"k1": "v1", "k2": "v2"},
		Children: []*tree{
			{Label: "child", Tags: []string{}},
		},
	}
}

func TestProperties(t *testing.T) {
	variants := []func(*tree){
		func(x *tree) {},
		func(x *tree) { x.Label = "other" },
		func(x *tree) { x.Weight = math.NaN() },
		func(x *tree) { x.Limit = nil },
		func(x *tree) { x.At = x.At.Add(time.Second) },
		func(x *tree) { x.Enabled = false },
		func(x *tree) { x.Leaf = nil },
		func(x *tree) { x.Leaves = x.Leaves[:1] },
		func(x *tree) { x.Tags = nil },
		func(x *tree) { x.Tags = []string{} },
		func(x *tree) { x.Attrs["k3"] = "v3" },
		func(x *tree) { x.Children[0].Label = "kid" },
		func(x *tree) { x.ID = uuid.Nil },
	}
	nodes := make([]*tree, len(variants))
	for i, v := range variants {
		nodes[i] = sample()
		v(nodes[i])
	}
	nodes = append(nodes, nil)
	for i, a := range nodes {
		assert.True(t, treeType.Equal(a, a), "reflexive equal %d", i)
		assert.Zero(t, treeType.Compare(a, a), "reflexive compare %d", i)
		for j, b := range nodes {
			eq := treeType.Equal(a, b)
			assert.Equal(t, eq, treeType.Equal(b, a), "symmetric equal %d %d", i, j)
			c := treeType.Compare(a, b)
			assert.Equal(t, sign(c), -sign(treeType.Compare(b, a)), "antisymmetric compare %d %d", i, j)
			assert.Equal(t, eq, c == 0, "compare agrees with equal %d %d", i, j)
			if eq {
				assert.Equal(t, treeType.Hash(a), treeType.Hash(b), "hash agrees with equal %d %d", i, j)
			}
		}
	}
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

func TestAbsentNotEmpty(t *testing.T) {
	a, b := sample(), sample()
	a.Tags = nil
	b.Tags = []string{}
	assert.False(t, treeType.Equal(a, b))
	assert.Negative(t, treeType.Compare(a, b))
	c := sample()
	c.Tags = []string{"a"}
	assert.Negative(t, treeType.Compare(b, c))
}

func TestHash(t *testing.T) {
	assert.Zero(t, treeType.Hash(nil))
	l := &leaf{Name: "n", Count: 3}
	h := structural.Fold(structural.Fold(17, Strings.Hash("n")), Ints[int]().Hash(3))
	assert.Equal(t, h, leafType.Hash(l))
	assert.Equal(t, uint64(17*31*31), leafType.Hash(&leaf{}))
}

func TestMapOrder(t *testing.T) {
	a, b := sample(), sample()
	a.Attrs = map[string]string{}
	b.Attrs = map[string]string{}
	for _, k := range []string{"a", "b", "c", "d"} {
		a.Attrs[k] = k + "v"
	}
	for _, k := range []string{"d", "c", "b", "a"} {
		b.Attrs[k] = k + "v"
	}
	assert.True(t, treeType.Equal(a, b))
	assert.Equal(t, treeType.Hash(a), treeType.Hash(b))
	assert.Zero(t, treeType.Compare(a, b))
}

func TestSeqOrder(t *testing.T) {
	a, b := sample(), sample()
	a.Leaves[0], a.Leaves[1] = a.Leaves[1], a.Leaves[0]
	assert.False(t, treeType.Equal(a, b))
	assert.Positive(t, treeType.Compare(a, b))
}

func TestClone(t *testing.T) {
	src := sample()
	src.scratch = 7
	c := treeType.Clone(src)
	require.True(t, treeType.Equal(src, c))
	assert.Equal(t, 7, c.scratch)
	if diff := cmp.Diff(src, c, cmp.AllowUnexported(tree{})); diff != "" {
		t.Errorf("clone differs (-src +clone):\n%s", diff)
	}

	assert.NotSame(t, src.Leaf, c.Leaf)
	assert.NotSame(t, src.Limit, c.Limit)
	assert.NotSame(t, src.Children[0], c.Children[0])
	assert.NotNil(t, c.Children[0].Tags)
	assert.Nil(t, c.Children[0].Leaves)

	c.Leaves = append(c.Leaves, &leaf{Name: "c"})
	c.Leaves[0].Name = "changed"
	c.Tags[0] = "changed"
	c.Attrs["k1"] = "changed"
	*c.Limit = 9
	c.Children[0].Label = "changed"
	assert.Len(t, src.Leaves, 2)
	assert.Equal(t, "a", src.Leaves[0].Name)
	assert.Equal(t, "x", src.Tags[0])
	assert.Equal(t, "v1", src.Attrs["k1"])
	assert.Equal(t, 2.5, *src.Limit)
	assert.Equal(t, "child", src.Children[0].Label)
	assert.False(t, treeType.Equal(src, c))
}

func TestDeepCloneNil(t *testing.T) {
	c, err := treeType.DeepClone(nil)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Nil(t, treeType.Clone(nil))
}

func TestDefineTwice(t *testing.T) {
	assert.Panics(t, func() {
		leafType.Define(String("name", func(l *leaf) *string { return &l.Name }))
	})
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, []string{"name", "count"}, leafType.FieldNames())
	assert.Equal(t, "leaf", leafType.Name())
}

func TestSort(t *testing.T) {
	ls := []*leaf{{Name: "b"}, nil, {Name: "a", Count: 2}, {Name: "a", Count: 1}}
	leafType.Sort(ls)
	want := []*leaf{nil, {Name: "a", Count: 1}, {Name: "a", Count: 2}, {Name: "b"}}
	if diff := cmp.Diff(want, ls); diff != "" {
		t.Errorf("sorted (-want +got):\n%s", diff)
	}
}

func TestDiff(t *testing.T) {
	a, b := sample(), sample()
	b.Label = "other"
	b.Leaves = append(b.Leaves, &leaf{Name: "c"})
	b.Attrs["k2"] = "changed"
	delete(b.Attrs, "k1")
	b.Leaf = nil
	b.Limit = nil
	var got []Difference
	treeType.Diff(a, b, "$", func(d Difference) {
		got = append(got, d)
	})
	want := []Difference{
		{Path: "$.label", From: "root", To: "other"},
		{Path: "$.limit", From: 2.5},
		{Path: "$.leaf", From: a.Leaf},
		{Path: "$.leaves[2]", To: b.Leaves[2]},
		{Path: `$.attrs["k1"]`, From: "v1"},
		{Path: `$.attrs["k2"]`, From: "v2", To: "changed"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff (-want +got):\n%s", diff)
	}

	got = nil
	treeType.Diff(a, sample(), "$", func(d Difference) {
		got = append(got, d)
	})
	assert.Empty(t, got)

	got = nil
	c, limit := sample(), 4.0
	c.Limit = &limit
	treeType.Diff(a, c, "$", func(d Difference) {
		got = append(got, d)
	})
	assert.Equal(t, []Difference{{Path: "$.limit", From: 2.5, To: 4.0}}, got)
}

func TestChildren(t *testing.T) {
	x := sample()
	var got []any
	treeType.Children(x, func(c any) bool {
		got = append(got, c)
		return true
	})
	want := []any{x.Leaf, x.Leaves[0], x.Leaves[1], x.Children[0]}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(tree{})); diff != "" {
		t.Errorf("Children (-want +got):\n%s", diff)
	}
}
