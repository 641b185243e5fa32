package repository

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCorruptState indicates a persisted record that cannot be decoded.
	ErrCorruptState = errors.New("corrupt persisted state")
)
