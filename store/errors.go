package store

import "errors"

var (
	// ErrNotFound is returned by Get/Update when no record has the given id.
	ErrNotFound = errors.New("record not found")
)
