package treewrap

import "errors"

var (
	// ErrTypeMismatch is returned when a container is constructed
	// over a bound position whose kind does not match.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrResourceExhausted is returned by Assign when the source
	// value is nested deeper than the configured ceiling.
	ErrResourceExhausted = errors.New("resource exhausted")
)
