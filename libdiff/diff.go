// Package libdiff reports the differences between two nodes: which values
// changed, were added or were removed, with character edits for changed
// strings. It also computes JSON merge patches and aligns result lists.
package libdiff

import (
	"github.com/resultdoc/go-sarif/debug"
	"github.com/resultdoc/go-sarif/derive"
	"github.com/resultdoc/go-sarif/sarif"
)

// Root is the path of the nodes passed to Diff.
const Root = "$"

// Diff returns the changes turning a into b, which must be of the same kind.
// The changes are ordered by field declaration order, sequence index and
// mapping key, and cover exactly the fields compared by equality: Diff
// returns no changes if and only if a and b are equal.
func Diff(a, b sarif.Node) ([]Change, error) {
	var res []Change
	err := sarif.DiffNodes(a, b, Root, func(d derive.Difference) {
		c := MakeChange(d)
		if debug.Diff() {
			debug.Logf("diff %s %s", c.Op, c.Path)
			debug.LogAny(c)
		}
		res = append(res, c)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
