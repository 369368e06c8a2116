// Package dft provides one-dimensional complex discrete Fourier transforms
// behind a small interface, so that multi-dimensional code can stay agnostic
// of the algorithm in use.
//
// Every [Transform] is unnormalized in both directions:
//
//	Forward: X[k] = sum_j x[j] * exp(-2*pi*i*j*k/n)
//	Inverse: x[j] = sum_k X[k] * exp(+2*pi*i*j*k/n)
//
// so Inverse(Forward(x)) == n*x. Scaling is left to the caller.
//
// Three implementations are available:
//
//   - [NewAlgoFFT]: plans from github.com/MeKo-Christian/algo-fft (SIMD
//     kernels, mixed radix and Bluestein for arbitrary lengths)
//   - [NewGonum]: gonum's FFTPACK port (complex128 only)
//   - [NewDirect]: an O(n^2) reference transform
//
// Lengths 0 and 1 are accepted by all of them and behave as the identity.
//
// # Usage
//
//	planner, _ := dft.PlannerFor[complex128](dft.BackendAuto)
//	plans := dft.NewCache(planner)
//	t, _ := plans.Get(12)
//	_ = t.Forward(freq, samples)
package dft
