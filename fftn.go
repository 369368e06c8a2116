package fftn

import (
	"github.com/astrojhgu/fftn/dft"
	"github.com/astrojhgu/fftn/ndarray"
)

// The package-level functions use a default Engine (automatic backend,
// backward normalization) created for the call.

// FFT computes the unnormalized 1D forward transform of src into dst.
func FFT[T dft.Complex](dst, src []T) error {
	e, err := NewEngine[T]()
	if err != nil {
		return err
	}

	return e.FFT(dst, src)
}

// IFFT computes the 1D inverse transform of src into dst, divided by len(src).
func IFFT[T dft.Complex](dst, src []T) error {
	e, err := NewEngine[T]()
	if err != nil {
		return err
	}

	return e.IFFT(dst, src)
}

// FFTN computes the forward transform of in along axis into out.
func FFTN[T dft.Complex](in, out *ndarray.View[T], axis int) error {
	e, err := NewEngine[T]()
	if err != nil {
		return err
	}

	return e.FFTN(in, out, axis)
}

// IFFTN computes the inverse transform of in along axis into out, dividing
// each lane by its length.
func IFFTN[T dft.Complex](in, out *ndarray.View[T], axis int) error {
	e, err := NewEngine[T]()
	if err != nil {
		return err
	}

	return e.IFFTN(in, out, axis)
}

// FFTND computes the forward transform over axes, in the given order.
// in is overwritten with intermediate results when len(axes) > 1.
func FFTND[T dft.Complex](in, out *ndarray.View[T], axes ...int) error {
	e, err := NewEngine[T]()
	if err != nil {
		return err
	}

	return e.FFTND(in, out, axes...)
}

// IFFTND computes the inverse transform over axes, in the given order,
// normalized by the product of the transformed lengths.
// in is overwritten with intermediate results when len(axes) > 1.
func IFFTND[T dft.Complex](in, out *ndarray.View[T], axes ...int) error {
	e, err := NewEngine[T]()
	if err != nil {
		return err
	}

	return e.IFFTND(in, out, axes...)
}

// FFT2 computes the forward 2D transform over axes [0, 1].
func FFT2[T dft.Complex](in, out *ndarray.View[T]) error {
	e, err := NewEngine[T]()
	if err != nil {
		return err
	}

	return e.FFT2(in, out)
}

// IFFT2 computes the normalized inverse 2D transform over axes [1, 0].
func IFFT2[T dft.Complex](in, out *ndarray.View[T]) error {
	e, err := NewEngine[T]()
	if err != nil {
		return err
	}

	return e.IFFT2(in, out)
}
