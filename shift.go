package fftn

import (
	"fmt"

	"github.com/astrojhgu/fftn/ndarray"
)

// Shift rolls src by floor(n/2) along each listed axis and writes the result
// to dst, moving the zero-frequency bin to the centre. With no axes every
// axis is shifted. dst and src must not share storage.
func Shift[T any](dst, src *ndarray.View[T], axes ...int) error {
	return roll(dst, src, axes, false)
}

// InverseShift undoes Shift, for odd and even lengths alike.
func InverseShift[T any](dst, src *ndarray.View[T], axes ...int) error {
	return roll(dst, src, axes, true)
}

func roll[T any](dst, src *ndarray.View[T], axes []int, inverse bool) error {
	if dst == nil || src == nil {
		return ErrNilView
	}

	if len(axes) == 0 {
		if err := validateShape(src, dst); err != nil {
			return err
		}

		axes = make([]int, src.Rank())
		for d := range axes {
			axes[d] = d
		}
	} else if err := validate(src, dst, axes); err != nil {
		return err
	}

	if overlaps(src.Data(), dst.Data()) {
		return ErrOverlap
	}

	shape := src.Shape()
	shift := make([]int, len(shape))
	for _, axis := range axes {
		n := shape[axis]
		s := n / 2
		if inverse {
			s = n - s
		}

		shift[axis] = (shift[axis] + s) % max(n, 1)
	}

	idx := make([]int, len(shape))
	to := make([]int, len(shape))

	for range src.Size() {
		for d := range idx {
			to[d] = (idx[d] + shift[d]) % shape[d]
		}

		dst.Set(src.At(idx...), to...)

		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < shape[d] {
				break
			}

			idx[d] = 0
		}
	}

	return nil
}

func validateShape[T any](in, out *ndarray.View[T]) error {
	if !in.SameShape(out) {
		return fmt.Errorf("%w: input %v, output %v", ErrShapeMismatch, in.Shape(), out.Shape())
	}

	return nil
}

// Freq returns the sample frequencies of a length-n DFT with sample spacing
// d, in the order the transform produces them:
//
//	[0, 1, ..., ceil(n/2)-1, -floor(n/2), ..., -1] / (d*n)
func Freq(n int, d float64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	if !(d > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpacing, d)
	}

	out := make([]float64, n)
	scale := 1 / (d * float64(n))
	pos := (n + 1) / 2

	for i := range out {
		k := i
		if i >= pos {
			k = i - n
		}

		out[i] = float64(k) * scale
	}

	return out, nil
}
