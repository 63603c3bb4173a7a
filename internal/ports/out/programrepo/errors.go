package programrepo

import "errors"

var (
	ErrNotFound      = errors.New("program not found")
	ErrAlreadyExists = errors.New("program already exists")
)
