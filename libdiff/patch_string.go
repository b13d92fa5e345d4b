package libdiff

import (
	"fmt"
	"strings"
)

// PatchString applies edits produced by DiffString to doc.
func PatchString(doc string, edits []Edit) (string, error) {
	var res strings.Builder
	res.Grow(len(doc))
	rest := doc
	for i := range edits {
		e := &edits[i]
		switch e.Op {
		case Keep, Delete:
			if !strings.HasPrefix(rest, e.Text) {
				return "", fmt.Errorf("cannot patch at edit %d, unexpected text %q, expected %q", i, prefix(rest, len(e.Text)), e.Text)
			}
			if e.Op == Keep {
				res.WriteString(e.Text)
			}
			rest = rest[len(e.Text):]
		case Insert:
			res.WriteString(e.Text)
		default:
			return "", fmt.Errorf("unexpected string edit op %s", e.Op)
		}
	}
	if rest != "" {
		return "", fmt.Errorf("cannot patch, %d bytes left over", len(rest))
	}
	return res.String(), nil
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
