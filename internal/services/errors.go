package services

import "errors"

var (
	// ErrForbidden covers both a wrong delete token and no token configured
	// at all; callers must not be able to tell the two apart.
	ErrForbidden = errors.New("forbidden")

	ErrNotFound = errors.New("ride request not found")

	ErrMalformedID = errors.New("malformed ride request id")
)
