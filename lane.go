package fftn

import (
	"fmt"

	"github.com/astrojhgu/fftn/ndarray"
)

// laneFunc transforms one contiguous lane. dst and src have equal length and
// do not overlap.
type laneFunc[T any] func(dst, src []T) error

// mutateLanes applies fn to every lane of in along axis and stores the result
// in the matching lane of out. axis is swapped to position 0 for the duration
// of the call and restored before returning. in and out may be the same view.
//
// Lanes with unit stride are passed to fn in place; the others go through a
// gather buffer on the input side and a scatter buffer on the output side.
// When in and out share storage the input is always gathered, so fn never
// sees overlapping slices.
func mutateLanes[T any](in, out *ndarray.View[T], axis int, fn laneFunc[T]) error {
	if axis != 0 {
		swap := func() {
			in.SwapAxes(0, axis)
			if out != in {
				out.SwapAxes(0, axis)
			}
		}

		swap()
		defer swap()
	}

	n := in.Dim(0)
	if n == 0 {
		return nil
	}

	shared := overlaps(in.Data(), out.Data())
	src := make([]T, n)
	dst := make([]T, n)

	for k := range in.NumLanes(0) {
		inLane := in.Lane(0, k)
		outLane := out.Lane(0, k)

		s := src
		if inLane.Contiguous() && !shared {
			s = inLane.Slice()
		} else {
			inLane.Gather(src)
		}

		d := dst
		direct := outLane.Contiguous()
		if direct {
			d = outLane.Slice()
		}

		if err := fn(d, s); err != nil {
			return fmt.Errorf("lane %d: %w", k, err)
		}

		if !direct {
			outLane.Scatter(dst)
		}
	}

	return nil
}

// overlaps reports whether a and b are carved from the same backing array.
func overlaps[T any](a, b []T) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return false
	}

	return &a[:cap(a)][cap(a)-1] == &b[:cap(b)][cap(b)-1]
}
