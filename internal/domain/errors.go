package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicate       = errors.New("resource already exists")
	ErrUnauthenticated = errors.New("no active session")
	ErrForbidden       = errors.New("access denied")
	ErrConflict        = errors.New("conflict with current state")
	ErrAccountInactive = errors.New("account not active")
)
