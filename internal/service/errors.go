package service

import "errors"

// Every operation failure wraps one of these sentinels so callers can
// map them without string matching.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation")
)
