package dft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// algoFFT adapts an algo-fft plan. algo-fft scales its inverse by 1/n, so
// the unnormalized inverse is computed as conj(Forward(conj(x))) instead.
type algoFFT[T Complex] struct {
	n       int
	forward func(dst, src []T) error
	scratch []T
}

// NewAlgoFFT returns a Transform backed by an algo-fft plan of length n.
func NewAlgoFFT[T Complex](n int) (Transform[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	if n <= 1 {
		return identity[T]{n: n}, nil
	}

	var forward func(dst, src []T) error

	var zero T
	switch any(zero).(type) {
	case complex64:
		plan, err := algofft.NewPlan32(n)
		if err != nil {
			return nil, fmt.Errorf("dft: algo-fft plan for length %d: %w", n, err)
		}

		forward = any(plan.Forward).(func(dst, src []T) error)
	case complex128:
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("dft: algo-fft plan for length %d: %w", n, err)
		}

		forward = any(plan.Forward).(func(dst, src []T) error)
	default:
		return nil, ErrUnsupportedPrecision
	}

	return &algoFFT[T]{
		n:       n,
		forward: forward,
		scratch: make([]T, n),
	}, nil
}

func (a *algoFFT[T]) Len() int { return a.n }

func (a *algoFFT[T]) Forward(dst, src []T) error {
	if err := checkLengths(a.n, dst, src); err != nil {
		return err
	}

	return a.forward(dst, src)
}

func (a *algoFFT[T]) Inverse(dst, src []T) error {
	if err := checkLengths(a.n, dst, src); err != nil {
		return err
	}

	conjugate(a.scratch, src)
	if err := a.forward(dst, a.scratch); err != nil {
		return err
	}

	conjugate(dst, dst)
	return nil
}
