package sarif

import "errors"

var (
	// ErrUnknownKind is returned when a node's Kind has not been registered.
	ErrUnknownKind = errors.New("unknown node kind")
	// ErrKindTaken is returned by Register for a Kind already in use.
	ErrKindTaken = errors.New("node kind already registered")
)
