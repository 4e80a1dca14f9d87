package wellness

import "errors"

// Common validation errors used across the package.
var (
	// ErrNonPositiveInput is returned when a numeric input that must be
	// strictly positive is zero or negative.
	ErrNonPositiveInput = errors.New("must be greater than zero")

	// ErrUnknownActivity is returned when an activity level has no MET entry.
	ErrUnknownActivity = errors.New("invalid activity level")
)
