package errors

import "errors"

var (
	// requested entity does not exist.
	ErrMissing = errors.New("missing")

	// more entities are found than expected.
	ErrTooMuch = errors.New("too much")

	// input is malformed or out of the allowed set.
	ErrInvalid = errors.New("invalid")

	// a remote dependency is unreachable or timed out.
	//
	// Distinct from ErrMissing: callers may retry this,
	// but must not treat it as confirmed absence.
	ErrUnavailable = errors.New("dependency unavailable")
)
