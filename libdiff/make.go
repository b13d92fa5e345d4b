package libdiff

import "github.com/resultdoc/go-sarif/derive"

// Change is one difference between two nodes. From is nil for an Insert and
// To is nil for a Delete. Edits holds the character edits turning From into
// To when both are strings and only part of the string changed.
type Change struct {
	Path  string
	Op    Op
	From  any
	To    any
	Edits []Edit
}

// MakeChange classifies d.
func MakeChange(d derive.Difference) Change {
	switch {
	case d.From == nil:
		return Change{Path: d.Path, Op: Insert, To: d.To}
	case d.To == nil:
		return Change{Path: d.Path, Op: Delete, From: d.From}
	}
	res := Change{Path: d.Path, Op: Replace, From: d.From, To: d.To}
	from, fok := d.From.(string)
	to, tok := d.To.(string)
	if fok && tok {
		res.Edits = DiffString(from, to)
	}
	return res
}
