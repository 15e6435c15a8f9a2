package domain

import "errors"

// Failure kinds surfaced to callers. Services wrap these with context via %w;
// handlers map them to HTTP statuses with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrBadCreds          = errors.New("invalid password")
	ErrInsufficientStock = errors.New("insufficient stock")
)
