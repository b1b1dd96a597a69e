package engine

import "errors"

// Errors returned by AddBody.
var (
	ErrNilBody       = errors.New("body is nil")
	ErrDuplicateBody = errors.New("body already registered")
	ErrTooManyBodies = errors.New("body limit reached")
)
