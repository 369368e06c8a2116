package dft

import "errors"

// Errors returned by transform constructors and methods.
var (
	// ErrInvalidLength is returned for a negative transform length.
	ErrInvalidLength = errors.New("dft: invalid transform length")

	// ErrLengthMismatch is returned when dst or src does not have Len()
	// elements.
	ErrLengthMismatch = errors.New("dft: slice length mismatch")

	// ErrUnsupportedPrecision is returned when a backend cannot handle the
	// requested element type.
	ErrUnsupportedPrecision = errors.New("dft: unsupported precision")

	// ErrUnknownBackend is returned for an unrecognized backend name or value.
	ErrUnknownBackend = errors.New("dft: unknown backend")
)
