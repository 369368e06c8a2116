// Package spectrum derives real-valued quantities from N-dimensional complex
// spectra.
//
// The package does not transform anything itself. It reads complex bins
// produced by [github.com/astrojhgu/fftn] (or any other source) from an
// [ndarray.View] and writes magnitude, power or phase into a float64 view of
// the same shape. Lanes are processed one at a time; magnitude and power use
// the SIMD kernels of algo-vecmath.
package spectrum
