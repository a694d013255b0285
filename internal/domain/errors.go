package domain

import "errors"

var (
	// ErrValidation marks a required field that was left empty.
	ErrValidation = errors.New("validation failed")

	// ErrFlightNotFound marks a flight number that does not exist in the catalog.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrPersistence marks a storage read or write failure. On write failure the
	// in-memory mutation is kept, not rolled back.
	ErrPersistence = errors.New("persistence failed")
)
