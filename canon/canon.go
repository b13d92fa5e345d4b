package canon

import (
	"context"
	"slices"

	"github.com/resultdoc/go-sarif/debug"
	"github.com/resultdoc/go-sarif/sarif"

	"golang.org/x/sync/errgroup"
)

// Canonicalize returns the canonical form of log. log itself is not
// modified. It fails with derive.ErrInvalidArgument if log is nil.
func Canonicalize(log *sarif.Log, opts ...Option) (*sarif.Log, error) {
	res, err := log.DeepClone()
	if err != nil {
		return nil, err
	}
	o := mkOptions(opts)
	for i, run := range res.Runs {
		if run == nil {
			continue
		}
		if debug.Canon() {
			debug.Logf("canon run %d: %d artifacts %d results", i, len(run.Artifacts), len(run.Results))
		}
		if err := canonRun(run, o); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func canonRun(run *sarif.Run, o *Options) error {
	artifactIndex := permute(run.Artifacts, sarif.ArtifactType.Compare)
	var ruleIndex map[int]int
	if run.Tool != nil && run.Tool.Driver != nil {
		ruleIndex = permute(run.Tool.Driver.Rules, sarif.ReportingDescriptorType.Compare)
	}
	if debug.Canon() {
		debug.Logf("canon artifact index map %v", artifactIndex)
		debug.Logf("canon rule index map %v", ruleIndex)
	}
	err := sarif.Visit(run, func(n sarif.Node, isPost bool) (bool, error) {
		if !isPost {
			return true, nil
		}
		switch x := n.(type) {
		case *sarif.ArtifactLocation:
			x.Index = remap(artifactIndex, x.Index)
		case *sarif.Result:
			x.RuleIndex = remap(ruleIndex, x.RuleIndex)
			sarif.LocationType.Sort(x.Locations)
			sarif.CodeFlowType.Sort(x.CodeFlows)
		case *sarif.CodeFlow:
			sarif.ThreadFlowType.Sort(x.ThreadFlows)
		case *sarif.ThreadFlow:
			if o.SortThreadFlowLocations {
				sarif.ThreadFlowLocationType.Sort(x.Locations)
			}
		case *sarif.Location:
			sarif.LogicalLocationType.Sort(x.LogicalLocations)
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	if !o.KeepResultOrder {
		sarif.ResultType.Sort(run.Results)
	}
	return nil
}

// permute sorts s stably by compare and returns the map from each element's
// old index to its new one.
func permute[T any](s []*T, compare func(a, b *T) int) map[int]int {
	if s == nil {
		return nil
	}
	order := make([]int, len(s))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		return compare(s[i], s[j])
	})
	sorted := make([]*T, len(s))
	res := make(map[int]int, len(s))
	for to, from := range order {
		sorted[to] = s[from]
		res[from] = to
	}
	copy(s, sorted)
	return res
}

// remap returns the new index of i. -1 and indices out of range stay as they
// are.
func remap(m map[int]int, i int) int {
	if i < 0 {
		return i
	}
	if j, ok := m[i]; ok {
		return j
	}
	return i
}

// Digest returns the hash of the canonical form of log. Logs with equal
// canonical forms have equal digests.
func Digest(log *sarif.Log, opts ...Option) (uint64, error) {
	c, err := Canonicalize(log, opts...)
	if err != nil {
		return 0, err
	}
	return sarif.LogType.Hash(c), nil
}

// Equivalent reports whether a and b have equal canonical forms.
func Equivalent(a, b *sarif.Log, opts ...Option) (bool, error) {
	ca, err := Canonicalize(a, opts...)
	if err != nil {
		return false, err
	}
	cb, err := Canonicalize(b, opts...)
	if err != nil {
		return false, err
	}
	return sarif.LogType.Equal(ca, cb), nil
}

// CanonicalizeAll canonicalizes logs concurrently. The result at index i is
// the canonical form of logs[i].
func CanonicalizeAll(ctx context.Context, logs []*sarif.Log, opts ...Option) ([]*sarif.Log, error) {
	res := make([]*sarif.Log, len(logs))
	g, ctx := errgroup.WithContext(ctx)
	for i, log := range logs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := Canonicalize(log, opts...)
			if err != nil {
				return err
			}
			res[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
