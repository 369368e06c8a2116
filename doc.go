// Package fftn computes discrete Fourier transforms of N-dimensional complex
// arrays by applying a one-dimensional transform along a list of axes.
//
// Arrays are [ndarray.View] values, so any strided layout works: row-major,
// column-major, transposed or sliced views are all transformed in place of
// their logical shape, without materializing a transposed copy. Lanes that
// are not contiguous in memory are gathered into a scratch buffer one lane at
// a time.
//
// # Usage
//
//	in, _ := ndarray.FromSlice(samples, 64, 64)
//	out := ndarray.New[complex128](64, 64)
//	err := fftn.FFT2(in, out)            // axes [0, 1]
//	err = fftn.FFTND(in, out, 2, 0)      // any axes, applied left to right
//
// # Input as scratch
//
// Multi-axis transforms read from the input view and write to the output
// view one axis at a time. Between axes the intermediate result is copied
// back into the input, so after [FFTND] or [IFFTND] with more than one axis
// the input holds the result of the second-to-last step. Single-axis
// transforms never write to the input.
//
// # Normalization
//
// By default forward transforms are unnormalized and inverse transforms
// divide every lane by its length, so a multi-axis inverse is scaled by the
// product of the transformed lengths and IFFTND(FFTND(x)) == x. See [Norm]
// for the alternatives.
//
// # Axis order
//
// [FFT2] runs axes [0, 1] and [IFFT2] runs axes [1, 0]. Both orders give the
// same result in exact arithmetic; the order only affects rounding.
package fftn
