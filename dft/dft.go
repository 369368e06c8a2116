package dft

import "fmt"

// Complex is the set of element types the transforms operate on.
type Complex interface {
	complex64 | complex128
}

// Transform is a complex-to-complex DFT of a fixed length.
//
// dst and src must both have Len() elements and must not overlap. src is
// never written. Implementations keep internal scratch space and are not safe
// for concurrent use.
type Transform[T Complex] interface {
	// Len returns the transform length.
	Len() int

	// Forward writes the unnormalized forward DFT of src into dst.
	Forward(dst, src []T) error

	// Inverse writes the unnormalized inverse DFT of src into dst. The
	// result is not divided by Len().
	Inverse(dst, src []T) error
}

// Planner creates a Transform for length n.
type Planner[T Complex] func(n int) (Transform[T], error)

func checkLengths[T Complex](n int, dst, src []T) error {
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: dst %d, src %d, want %d", ErrLengthMismatch, len(dst), len(src), n)
	}

	return nil
}

// identity handles lengths 0 and 1, where the DFT is a copy.
type identity[T Complex] struct {
	n int
}

func (t identity[T]) Len() int { return t.n }

func (t identity[T]) Forward(dst, src []T) error {
	if err := checkLengths(t.n, dst, src); err != nil {
		return err
	}

	copy(dst, src)
	return nil
}

func (t identity[T]) Inverse(dst, src []T) error {
	return t.Forward(dst, src)
}

// conjugate writes the complex conjugate of src into dst.
func conjugate[T Complex](dst, src []T) {
	switch d := any(dst).(type) {
	case []complex64:
		s := any(src).([]complex64)
		for i, v := range s {
			d[i] = complex(real(v), -imag(v))
		}
	case []complex128:
		s := any(src).([]complex128)
		for i, v := range s {
			d[i] = complex(real(v), -imag(v))
		}
	}
}
