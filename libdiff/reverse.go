package libdiff

// Reverse returns the changes turning the target of changes back into its
// source.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, Op: c.Op, From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		}
		r.Edits = ReverseEdits(c.Edits)
		res[i] = r
	}
	return res
}

// ReverseEdits swaps insertions and deletions.
func ReverseEdits(edits []Edit) []Edit {
	if edits == nil {
		return nil
	}
	res := make([]Edit, len(edits))
	for i, e := range edits {
		switch e.Op {
		case Insert:
			e.Op = Delete
		case Delete:
			e.Op = Insert
		}
		res[i] = e
	}
	return res
}
