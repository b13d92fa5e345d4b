package canon

import (
	"context"
	"testing"

	"github.com/resultdoc/go-sarif/derive"
	"github.com/resultdoc/go-sarif/sarif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(uri string, index, line int) *sarif.Location {
	return &sarif.Location{
		PhysicalLocation: &sarif.PhysicalLocation{
			ArtifactLocation: &sarif.ArtifactLocation{URI: uri, Index: index},
			Region:           &sarif.Region{StartLine: line},
		},
	}
}

func tfl(order, line int) *sarif.ThreadFlowLocation {
	return &sarif.ThreadFlowLocation{ExecutionOrder: order, Location: loc("b.go", 0, line)}
}

// unsorted returns a log whose artifacts are [b.go, a.go] and rules [R2, R1].
func unsorted() *sarif.Log {
	return &sarif.Log{
		Version: sarif.Version,
		Runs: []*sarif.Run{{
			Tool: &sarif.Tool{Driver: &sarif.ToolComponent{
				Name: "lint",
				Rules: []*sarif.ReportingDescriptor{
					{ID: "R2"},
					{ID: "R1"},
				},
			}},
			Artifacts: []*sarif.Artifact{
				{Location: &sarif.ArtifactLocation{URI: "b.go", Index: 0}},
				{Location: &sarif.ArtifactLocation{URI: "a.go", Index: 1}},
			},
			Results: []*sarif.Result{
				{
					RuleID:    "R2",
					RuleIndex: 0,
					Message:   sarif.TextMessage("second"),
					Locations: []*sarif.Location{loc("b.go", 0, 9), loc("a.go", 1, 2)},
					CodeFlows: []*sarif.CodeFlow{{
						ThreadFlows: []*sarif.ThreadFlow{{
							Locations: []*sarif.ThreadFlowLocation{tfl(2, 3), tfl(1, 9)},
						}},
					}},
				},
				{
					RuleID:    "R1",
					RuleIndex: 1,
					Message:   sarif.TextMessage("first"),
					Locations: []*sarif.Location{{
						LogicalLocations: []*sarif.LogicalLocation{{Name: "z"}, {Name: "f"}},
					}},
				},
				{
					RuleID:    "R3",
					RuleIndex: -1,
					Message:   sarif.TextMessage("no rule"),
				},
			},
		}},
	}
}

func TestCanonicalize(t *testing.T) {
	src := unsorted()
	orig, err := src.DeepClone()
	require.NoError(t, err)

	c, err := Canonicalize(src)
	require.NoError(t, err)
	assert.True(t, sarif.LogType.Equal(src, orig), "input modified")

	run := c.Runs[0]
	assert.Equal(t, "a.go", run.Artifacts[0].Location.URI)
	assert.Equal(t, 0, run.Artifacts[0].Location.Index)
	assert.Equal(t, "b.go", run.Artifacts[1].Location.URI)
	assert.Equal(t, 1, run.Artifacts[1].Location.Index)
	assert.Equal(t, "R1", run.Tool.Driver.Rules[0].ID)
	assert.Equal(t, "R2", run.Tool.Driver.Rules[1].ID)

	for _, r := range run.Results {
		if r.RuleIndex >= 0 {
			assert.Equal(t, r.RuleID, run.Tool.Driver.Rules[r.RuleIndex].ID)
		}
		err := sarif.Visit(r, func(n sarif.Node, isPost bool) (bool, error) {
			if al, ok := n.(*sarif.ArtifactLocation); ok && !isPost {
				assert.Equal(t, al.URI, run.Artifacts[al.Index].Location.URI)
			}
			return true, nil
		})
		require.NoError(t, err)
	}

	var r2 *sarif.Result
	for _, r := range run.Results {
		if r.RuleID == "R2" {
			r2 = r
		}
	}
	require.NotNil(t, r2)
	assert.Equal(t, "a.go", r2.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	// thread flow locations keep their order
	assert.Equal(t, 2, r2.CodeFlows[0].ThreadFlows[0].Locations[0].ExecutionOrder)

	for i := 1; i < len(run.Results); i++ {
		assert.LessOrEqual(t, sarif.ResultType.Compare(run.Results[i-1], run.Results[i]), 0)
	}
	for _, r := range run.Results {
		if r.RuleID == "R1" {
			assert.Equal(t, "f", r.Locations[0].LogicalLocations[0].Name)
		}
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	c1, err := Canonicalize(unsorted())
	require.NoError(t, err)
	c2, err := Canonicalize(c1)
	require.NoError(t, err)
	assert.True(t, sarif.LogType.Equal(c1, c2))
}

func TestSortThreadFlowLocations(t *testing.T) {
	c, err := Canonicalize(unsorted(), SortThreadFlowLocations(true))
	require.NoError(t, err)
	for _, r := range c.Runs[0].Results {
		if r.RuleID != "R2" {
			continue
		}
		locs := r.CodeFlows[0].ThreadFlows[0].Locations
		assert.Equal(t, 1, locs[0].ExecutionOrder)
		assert.Equal(t, 2, locs[1].ExecutionOrder)
	}
}

func TestKeepResultOrder(t *testing.T) {
	c, err := Canonicalize(unsorted(), KeepResultOrder(true))
	require.NoError(t, err)
	var ids []string
	for _, r := range c.Runs[0].Results {
		ids = append(ids, r.RuleID)
	}
	assert.Equal(t, []string{"R2", "R1", "R3"}, ids)
}

// shuffled is unsorted with every reorderable collection reversed and the
// indices rewritten to match.
func shuffled() *sarif.Log {
	log := unsorted()
	run := log.Runs[0]
	run.Artifacts[0], run.Artifacts[1] = run.Artifacts[1], run.Artifacts[0]
	run.Artifacts[0].Location.Index = 0
	run.Artifacts[1].Location.Index = 1
	rules := run.Tool.Driver.Rules
	rules[0], rules[1] = rules[1], rules[0]
	res := run.Results
	res[0], res[2] = res[2], res[0]
	for _, r := range res {
		switch r.RuleID {
		case "R1":
			r.RuleIndex = 0
		case "R2":
			r.RuleIndex = 1
			r.Locations[0], r.Locations[1] = r.Locations[1], r.Locations[0]
			r.Locations[0].PhysicalLocation.ArtifactLocation.Index = 0
			r.Locations[1].PhysicalLocation.ArtifactLocation.Index = 1
			for _, l := range r.CodeFlows[0].ThreadFlows[0].Locations {
				l.Location.PhysicalLocation.ArtifactLocation.Index = 1
			}
		}
	}
	for _, r := range res {
		if r.RuleID == "R1" {
			ll := r.Locations[0].LogicalLocations
			ll[0], ll[1] = ll[1], ll[0]
		}
	}
	return log
}

func TestEquivalent(t *testing.T) {
	a, b := unsorted(), shuffled()
	require.False(t, sarif.LogType.Equal(a, b))
	eq, err := Equivalent(a, b)
	require.NoError(t, err)
	assert.True(t, eq)

	da, err := Digest(a)
	require.NoError(t, err)
	db, err := Digest(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)

	b.Runs[0].Results[0].Message.Text = "changed"
	eq, err = Equivalent(a, b)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestCanonicalizeNil(t *testing.T) {
	_, err := Canonicalize(nil)
	assert.ErrorIs(t, err, derive.ErrInvalidArgument)
	_, err = Digest(nil)
	assert.ErrorIs(t, err, derive.ErrInvalidArgument)
}

func TestCanonicalizeAll(t *testing.T) {
	logs := []*sarif.Log{unsorted(), shuffled(), unsorted()}
	res, err := CanonicalizeAll(context.Background(), logs)
	require.NoError(t, err)
	require.Len(t, res, 3)
	for i := range res {
		c, err := Canonicalize(logs[i])
		require.NoError(t, err)
		assert.True(t, sarif.LogType.Equal(c, res[i]))
	}
	assert.True(t, sarif.LogType.Equal(res[0], res[1]))

	_, err = CanonicalizeAll(context.Background(), []*sarif.Log{unsorted(), nil})
	assert.ErrorIs(t, err, derive.ErrInvalidArgument)
}
