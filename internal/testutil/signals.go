package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/astrojhgu/fftn/ndarray"
)

// DeterministicNoise generates complex white noise with a fixed seed; real and
// imaginary parts are uniform in [-amplitude, amplitude].
func DeterministicNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// NoiseView returns a dense row-major array of the given shape filled with
// DeterministicNoise(seed, 1, size).
func NoiseView(seed int64, shape ...int) *ndarray.View[complex128] {
	n := 1
	for _, d := range shape {
		n *= d
	}
	v, err := ndarray.FromSlice(DeterministicNoise(seed, 1, n), shape...)
	if err != nil {
		panic(err)
	}
	return v
}

// Narrow converts a complex128 view into a dense complex64 copy.
func Narrow(v *ndarray.View[complex128]) *ndarray.View[complex64] {
	flat := v.Flatten()
	out := make([]complex64, len(flat))
	for i, c := range flat {
		out[i] = complex64(c)
	}
	n, err := ndarray.FromSlice(out, v.Shape()...)
	if err != nil {
		panic(err)
	}
	return n
}

// Impulse generates a unit impulse of the given length at pos.
func Impulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// ComplexTone generates exp(2*pi*i*bin*j/length), whose forward DFT is a
// single spike of height length at bin.
func ComplexTone(bin, length int) []complex128 {
	out := make([]complex128, length)
	for j := range out {
		out[j] = cmplx.Exp(complex(0, 2*math.Pi*float64(bin*j)/float64(length)))
	}
	return out
}

// ReferenceDFT evaluates the unnormalized DFT sum directly with cmplx.Exp.
// It is deliberately independent of the dft package.
func ReferenceDFT(x []complex128, inverse bool) []complex128 {
	n := len(x)
	sign := -1.0
	if inverse {
		sign = 1
	}
	out := make([]complex128, n)
	for k := range out {
		var acc complex128
		for j, v := range x {
			acc += v * cmplx.Exp(complex(0, sign*2*math.Pi*float64(j*k)/float64(n)))
		}
		out[k] = acc
	}
	return out
}

// ReferenceAxis applies ReferenceDFT to every lane of src along axis and
// returns the result as a new dense array.
func ReferenceAxis(src *ndarray.View[complex128], axis int, inverse bool) *ndarray.View[complex128] {
	out := ndarray.New[complex128](src.Shape()...)
	buf := make([]complex128, src.Dim(axis))
	for k := range src.NumLanes(axis) {
		src.Lane(axis, k).Gather(buf)
		out.Lane(axis, k).Scatter(ReferenceDFT(buf, inverse))
	}
	return out
}
