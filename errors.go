package fftn

import (
	"errors"

	"github.com/astrojhgu/fftn/ndarray"
)

// Errors returned by transform entry points. Validation happens before any
// element is written, so a returned error from these checks leaves both
// views untouched.
var (
	// ErrShapeMismatch is returned when input and output views differ in
	// shape. It is the same value as [ndarray.ErrShapeMismatch].
	ErrShapeMismatch = ndarray.ErrShapeMismatch

	// ErrInvalidAxis is returned for an axis outside [0, rank), and by the
	// 2D entry points for views that are not rank 2. It is the same value as
	// [ndarray.ErrInvalidAxis].
	ErrInvalidAxis = ndarray.ErrInvalidAxis

	// ErrEmptyAxes is returned when a multi-axis transform gets no axes.
	ErrEmptyAxes = errors.New("fftn: empty axis list")

	// ErrNilView is returned when an input or output view is nil.
	ErrNilView = errors.New("fftn: nil view")

	// ErrNilPlanner is returned by NewEngineWithPlanner for a nil planner.
	ErrNilPlanner = errors.New("fftn: nil planner")

	// ErrOverlap is returned by Shift and InverseShift when source and
	// destination share storage.
	ErrOverlap = errors.New("fftn: source and destination overlap")

	// ErrInvalidLength is returned by Freq for a negative length.
	ErrInvalidLength = errors.New("fftn: invalid length")

	// ErrInvalidSpacing is returned by Freq for a non-positive sample spacing.
	ErrInvalidSpacing = errors.New("fftn: invalid sample spacing")

	// ErrUnknownNorm is returned by ParseNorm for an unrecognized name.
	ErrUnknownNorm = errors.New("fftn: unknown normalization")
)
