package ir

import "errors"

var (
	ErrBadJSON = errors.New("bad json value")
)
