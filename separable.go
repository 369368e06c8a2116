package fftn

import (
	"fmt"

	"github.com/astrojhgu/fftn/dft"
	"github.com/astrojhgu/fftn/ndarray"
)

// run carries the state of one transform call.
type run[T dft.Complex] struct {
	plans *dft.Cache[T]
	norm  Norm
}

// separable transforms along each axis in turn. Every step reads in and
// writes out; all but the last step copy out back into in so that the next
// axis sees the partial result.
func (r *run[T]) separable(in, out *ndarray.View[T], axes []int, inverse bool) error {
	for i, axis := range axes {
		if err := r.axis(in, out, axis, inverse); err != nil {
			return err
		}

		if i == len(axes)-1 {
			break
		}

		if err := in.CopyFrom(out); err != nil {
			return fmt.Errorf("fftn: copy back after axis %d: %w", axis, err)
		}
	}

	return nil
}

// axis transforms every lane along one axis, scaling each lane according to
// the normalization mode.
func (r *run[T]) axis(in, out *ndarray.View[T], axis int, inverse bool) error {
	t, err := r.plans.Get(in.Dim(axis))
	if err != nil {
		return fmt.Errorf("fftn: axis %d: %w", axis, err)
	}

	apply := t.Forward
	if inverse {
		apply = t.Inverse
	}

	scale := r.norm.factor(t.Len(), inverse)

	err = mutateLanes(in, out, axis, func(dst, src []T) error {
		if err := apply(dst, src); err != nil {
			return err
		}

		scaleInPlace(dst, scale)
		return nil
	})
	if err != nil {
		return fmt.Errorf("fftn: axis %d: %w", axis, err)
	}

	return nil
}
