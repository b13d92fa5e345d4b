package libdiff

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the JSON merge patch (RFC 7386) turning the JSON
// encoding of a into that of b.
func MergePatch(a, b any) ([]byte, error) {
	da, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encoding source: %w", err)
	}
	db, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encoding target: %w", err)
	}
	res, err := jsonpatch.CreateMergePatch(da, db)
	if err != nil {
		return nil, fmt.Errorf("creating merge patch: %w", err)
	}
	return res, nil
}

// ApplyMergePatch applies a merge patch to the JSON document doc.
func ApplyMergePatch(doc, patch []byte) ([]byte, error) {
	res, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, fmt.Errorf("applying merge patch: %w", err)
	}
	return res, nil
}
