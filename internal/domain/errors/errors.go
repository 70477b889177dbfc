package errors

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvalidRating      = errors.New("invalid rating")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrPersistenceCorrupt = errors.New("persisted data is corrupt")
)
