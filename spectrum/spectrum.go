package spectrum

import (
	"errors"
	"fmt"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-vecmath"

	"github.com/astrojhgu/fftn/ndarray"
)

// Errors returned by the spectrum functions.
var (
	ErrShapeMismatch = errors.New("spectrum: shape mismatch")
	ErrNilView       = errors.New("spectrum: nil view")
)

// Magnitude writes |X| for every bin of src into dst.
func Magnitude(dst *ndarray.View[float64], src *ndarray.View[complex128]) error {
	return fromParts(dst, src, vecmath.Magnitude)
}

// Power writes |X|^2 for every bin of src into dst.
func Power(dst *ndarray.View[float64], src *ndarray.View[complex128]) error {
	return fromParts(dst, src, vecmath.Power)
}

// Phase writes arg(X) in radians for every bin of src into dst.
func Phase(dst *ndarray.View[float64], src *ndarray.View[complex128]) error {
	return forEachLane(dst, src, func(out ndarray.Lane[float64], in ndarray.Lane[complex128]) {
		for i := range in.Len() {
			out.Set(i, cmplx.Phase(in.At(i)))
		}
	})
}

// fromParts splits each lane into real and imaginary scratch slices and
// hands them to kernel.
func fromParts(dst *ndarray.View[float64], src *ndarray.View[complex128], kernel func(dst, re, im []float64)) error {
	var re, im, out []float64

	return forEachLane(dst, src, func(o ndarray.Lane[float64], in ndarray.Lane[complex128]) {
		n := in.Len()
		if cap(re) < n {
			re = make([]float64, n)
			im = make([]float64, n)
			out = make([]float64, n)
		}

		re, im, out = re[:n], im[:n], out[:n]
		for i := range n {
			c := in.At(i)
			re[i] = real(c)
			im[i] = imag(c)
		}

		kernel(out, re, im)
		o.Scatter(out)
	})
}

func forEachLane(dst *ndarray.View[float64], src *ndarray.View[complex128], fn func(ndarray.Lane[float64], ndarray.Lane[complex128])) error {
	if dst == nil || src == nil {
		return ErrNilView
	}

	if !slices.Equal(dst.Shape(), src.Shape()) {
		return fmt.Errorf("%w: dst %v, src %v", ErrShapeMismatch, dst.Shape(), src.Shape())
	}

	if src.Rank() == 0 {
		d, err := ndarray.FromSlice(make([]float64, 1), 1)
		if err != nil {
			return err
		}

		s, err := ndarray.FromSlice([]complex128{src.At()}, 1)
		if err != nil {
			return err
		}

		fn(d.Lane(0, 0), s.Lane(0, 0))
		dst.Set(d.At(0))
		return nil
	}

	last := src.Rank() - 1
	for k := range src.NumLanes(last) {
		fn(dst.Lane(last, k), src.Lane(last, k))
	}

	return nil
}
