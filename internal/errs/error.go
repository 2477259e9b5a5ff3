package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is deliberately generic: bad credentials, unknown
	// reservation and wrong last name all read the same to the caller.
	ErrUnauthorized   = errors.New("authentication failed")
	ErrBackend        = errors.New("reservation backend unavailable")
	ErrReasonRequired = errors.New("decline reason is required")
	ErrTransition     = errors.New("status transition not allowed")
)
