package registrationrepo

import "errors"

var (
	// ErrNotFound indicates the requested registration does not exist.
	ErrNotFound = errors.New("registration not found")

	// ErrDuplicate indicates a registration already exists for the same
	// (event, profile) pair.
	ErrDuplicate = errors.New("registration already exists for event and profile")
)
