package dft

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// gonumFFT adapts gonum's complex FFT, which is unnormalized in both
// directions.
type gonumFFT struct {
	fft *fourier.CmplxFFT
}

// NewGonum returns a complex128 Transform backed by gonum.org/v1/gonum/dsp/fourier.
func NewGonum(n int) (Transform[complex128], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	if n <= 1 {
		return identity[complex128]{n: n}, nil
	}

	return &gonumFFT{fft: fourier.NewCmplxFFT(n)}, nil
}

func (g *gonumFFT) Len() int { return g.fft.Len() }

func (g *gonumFFT) Forward(dst, src []complex128) error {
	if err := checkLengths(g.fft.Len(), dst, src); err != nil {
		return err
	}

	g.fft.Coefficients(dst, src)
	return nil
}

func (g *gonumFFT) Inverse(dst, src []complex128) error {
	if err := checkLengths(g.fft.Len(), dst, src); err != nil {
		return err
	}

	g.fft.Sequence(dst, src)
	return nil
}
