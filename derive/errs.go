package derive

import "errors"

var (
	// ErrInvalidArgument is returned when a required node is absent, for
	// example when deep cloning a nil node.
	ErrInvalidArgument = errors.New("invalid argument")
)
