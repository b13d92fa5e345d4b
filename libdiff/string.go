package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Edit is one step of turning a string into another: Keep and Delete
// consume Text from the source, Insert adds it.
type Edit struct {
	Op   Op
	Text string
}

// DiffString returns the edits turning from into to, or nil if the strings
// are equal or so different that the edits would say less than a
// replacement. Multi-line strings are diffed line by line.
func DiffString(from, to string) []Edit {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	diffSize := 0
	res := make([]Edit, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			res = append(res, Edit{Op: Insert, Text: diff.Text})
			diffSize += len(diff.Text)
		case diffpatch.DiffDelete:
			res = append(res, Edit{Op: Delete, Text: diff.Text})
			diffSize += len(diff.Text)
		case diffpatch.DiffEqual:
			res = append(res, Edit{Op: Keep, Text: diff.Text})
		}
	}
	if diffSize == 0 {
		return nil
	}
	if diffSize > min(len(from), len(to))/2 {
		return nil
	}
	return res
}
