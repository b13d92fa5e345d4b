package libdiff

import (
	"github.com/resultdoc/go-sarif/derive"
	"github.com/resultdoc/go-sarif/sarif"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// SeqEdit is one step of an alignment of two sequences. For Keep both
// indices are set; for Delete only From and for Insert only To, the other
// being -1.
type SeqEdit struct {
	Op       Op
	From, To int
}

// AlignSeq aligns two sequences of nodes by equality, so that a node moved,
// added or removed does not make every following node differ.
//
// Each distinct node, up to equality, is mapped to a rune and the resulting
// strings are diffed.
func AlignSeq[T any](from, to []*T, ty *derive.Type[T]) []SeqEdit {
	classes := map[uint64][]*T{}
	var next rune
	m := map[*T]rune{}
	summarize := func(s []*T) []rune {
		res := make([]rune, len(s))
		for i, x := range s {
			h := ty.Hash(x)
			found := false
			for _, rep := range classes[h] {
				if ty.Equal(rep, x) {
					res[i] = m[rep]
					found = true
					break
				}
			}
			if !found {
				classes[h] = append(classes[h], x)
				m[x] = next
				res[i] = next
				next++
				if next == surrogateMin {
					next = surrogateMax + 1
				}
			}
		}
		return res
	}
	fromRunes := summarize(from)
	toRunes := summarize(to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := make([]SeqEdit, 0, max(len(from), len(to)))
	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffEqual:
			for range n {
				res = append(res, SeqEdit{Op: Keep, From: fi, To: ti})
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, SeqEdit{Op: Delete, From: fi, To: -1})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, SeqEdit{Op: Insert, From: -1, To: ti})
				ti++
			}
		}
	}
	return res
}

// Runes in the surrogate range do not survive conversion to string.
const (
	surrogateMin = 0xd800
	surrogateMax = 0xdfff
)

// Results returns the results of b which have no equal in a (added) and
// those of a which have no equal in b (removed). Runs should be
// canonicalized first so that result order does not matter.
func Results(a, b *sarif.Run) (added, removed []*sarif.Result) {
	var from, to []*sarif.Result
	if a != nil {
		from = a.Results
	}
	if b != nil {
		to = b.Results
	}
	for _, e := range AlignSeq(from, to, sarif.ResultType) {
		switch e.Op {
		case Insert:
			added = append(added, to[e.To])
		case Delete:
			removed = append(removed, from[e.From])
		}
	}
	return added, removed
}
