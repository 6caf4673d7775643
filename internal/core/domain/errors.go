package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTextRequired indicates the proverb text was empty after trimming.
	ErrTextRequired = errors.New("text required")

	// ErrMeaningRequired indicates the meaning was empty after trimming.
	ErrMeaningRequired = errors.New("meaning required")

	// ErrDuplicate indicates another record already carries the same
	// normalised text.
	ErrDuplicate = errors.New("a proverb with this exact text already exists")

	// ErrEmptyCollection indicates an operation needs at least one record.
	ErrEmptyCollection = errors.New("no proverbs available")

	// Admin Errors.

	// ErrAdminPasswordNotSet indicates no admin password is configured.
	// The admin surface stays disabled until one is set.
	ErrAdminPasswordNotSet = errors.New("admin password not configured")

	// ErrInvalidPassword indicates the supplied admin password was wrong.
	ErrInvalidPassword = errors.New("invalid admin password")
)
