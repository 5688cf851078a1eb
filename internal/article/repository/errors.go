package repository

import "errors"

var (
	// ErrRootNotFound is returned when the directory to scan does not exist.
	ErrRootNotFound = errors.New("root directory not found")

	// ErrUnexpectedStatus marks a WordPress answer with a status other than the expected one.
	// The wrapped error carries the status code and response body.
	ErrUnexpectedStatus = errors.New("unexpected status from wordpress")
)
