package core

import "errors"

// Common errors.
var (
	ErrNotRegularFile = errors.New("not a regular file")
)
