package ndarray

import "errors"

// Errors returned by view constructors and bulk operations.
var (
	// ErrInvalidShape is returned for negative extents, strides or offsets.
	ErrInvalidShape = errors.New("ndarray: invalid shape")

	// ErrSizeMismatch is returned when a slice does not hold exactly the
	// number of elements a row-major shape requires.
	ErrSizeMismatch = errors.New("ndarray: data size mismatch")

	// ErrRankMismatch is returned when shape and strides differ in length.
	ErrRankMismatch = errors.New("ndarray: rank mismatch")

	// ErrOutOfBounds is returned when a strided layout addresses elements
	// outside the backing slice.
	ErrOutOfBounds = errors.New("ndarray: layout out of bounds")

	// ErrShapeMismatch is returned when two views that must agree in shape
	// do not.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrInvalidAxis is returned for an axis outside [0, rank) or a
	// malformed axis permutation.
	ErrInvalidAxis = errors.New("ndarray: invalid axis")
)
