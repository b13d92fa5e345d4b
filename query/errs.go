package query

import "errors"

// ErrNotBool is returned when a filter does not evaluate to a boolean.
var ErrNotBool = errors.New("filter is not boolean")
