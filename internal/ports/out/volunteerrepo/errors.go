package volunteerrepo

import "errors"

var (
	ErrNotFound      = errors.New("volunteer application not found")
	ErrAlreadyExists = errors.New("volunteer application already exists")
)
