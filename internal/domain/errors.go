package domain

import "errors"

// Storage-level errors shared by the postgres and memory repositories.
var (
	ErrAlreadyExists = errors.New("record already exists")
	ErrNotFound      = errors.New("record not found")
)
