package dft

import (
	"fmt"
	"math"
)

// direct evaluates the DFT sum term by term. Twiddles are tabulated once per
// length and indexed by (j*k) mod n, and sums accumulate in complex128 even
// for complex64 data.
type direct[T Complex] struct {
	n       int
	twiddle []complex128
}

// NewDirect returns an O(n^2) reference Transform of length n.
func NewDirect[T Complex](n int) (Transform[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	if n <= 1 {
		return identity[T]{n: n}, nil
	}

	twiddle := make([]complex128, n)
	for k := range twiddle {
		sin, cos := math.Sincos(-2 * math.Pi * float64(k) / float64(n))
		twiddle[k] = complex(cos, sin)
	}

	return &direct[T]{n: n, twiddle: twiddle}, nil
}

func (d *direct[T]) Len() int { return d.n }

func (d *direct[T]) Forward(dst, src []T) error {
	if err := checkLengths(d.n, dst, src); err != nil {
		return err
	}

	d.eval(dst, src, false)
	return nil
}

func (d *direct[T]) Inverse(dst, src []T) error {
	if err := checkLengths(d.n, dst, src); err != nil {
		return err
	}

	d.eval(dst, src, true)
	return nil
}

func (d *direct[T]) eval(dst, src []T, inverse bool) {
	n := d.n
	for k := range n {
		var acc complex128
		for j, x := range src {
			w := d.twiddle[(j*k)%n]
			if inverse {
				w = complex(real(w), -imag(w))
			}

			acc += complex128(x) * w
		}

		dst[k] = T(acc)
	}
}
