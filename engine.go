package fftn

import (
	"fmt"

	"github.com/astrojhgu/fftn/dft"
	"github.com/astrojhgu/fftn/ndarray"
)

// Engine runs N-dimensional transforms with a fixed backend and
// normalization. It holds only immutable configuration: every call plans its
// own transforms and allocates its own scratch, so an Engine may be shared
// between goroutines as long as the views passed to concurrent calls are
// distinct.
type Engine[T dft.Complex] struct {
	planner dft.Planner[T]
	cfg     Config
}

// NewEngine returns an Engine configured by opts.
func NewEngine[T dft.Complex](opts ...Option) (*Engine[T], error) {
	cfg := ApplyOptions(opts...)

	planner, err := dft.PlannerFor[T](cfg.Backend)
	if err != nil {
		return nil, fmt.Errorf("fftn: %w", err)
	}

	return &Engine[T]{planner: planner, cfg: cfg}, nil
}

// NewEngineWithPlanner returns an Engine that draws its 1D transforms from
// planner instead of a built-in backend. The Backend option is ignored.
func NewEngineWithPlanner[T dft.Complex](planner dft.Planner[T], opts ...Option) (*Engine[T], error) {
	if planner == nil {
		return nil, ErrNilPlanner
	}

	return &Engine[T]{planner: planner, cfg: ApplyOptions(opts...)}, nil
}

// Config returns the engine's configuration.
func (e *Engine[T]) Config() Config { return e.cfg }

// FFT computes the 1D forward transform of src into dst.
func (e *Engine[T]) FFT(dst, src []T) error {
	return e.transform1D(dst, src, false)
}

// IFFT computes the 1D inverse transform of src into dst. With the default
// normalization the result is divided by len(src).
func (e *Engine[T]) IFFT(dst, src []T) error {
	return e.transform1D(dst, src, true)
}

func (e *Engine[T]) transform1D(dst, src []T, inverse bool) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: input [%d], output [%d]", ErrShapeMismatch, len(src), len(dst))
	}

	in, err := ndarray.FromSlice(src, len(src))
	if err != nil {
		return err
	}

	out, err := ndarray.FromSlice(dst, len(dst))
	if err != nil {
		return err
	}

	return e.Transform(in, out, []int{0}, inverse)
}

// FFTN computes the forward transform of in along one axis into out.
// in is not modified.
func (e *Engine[T]) FFTN(in, out *ndarray.View[T], axis int) error {
	return e.Transform(in, out, []int{axis}, false)
}

// IFFTN computes the inverse transform of in along one axis into out.
// in is not modified.
func (e *Engine[T]) IFFTN(in, out *ndarray.View[T], axis int) error {
	return e.Transform(in, out, []int{axis}, true)
}

// FFTND computes the forward transform over axes, applied left to right.
// in is used as scratch between axes; see the package documentation.
func (e *Engine[T]) FFTND(in, out *ndarray.View[T], axes ...int) error {
	return e.Transform(in, out, axes, false)
}

// IFFTND computes the inverse transform over axes, applied left to right.
// in is used as scratch between axes; see the package documentation.
func (e *Engine[T]) IFFTND(in, out *ndarray.View[T], axes ...int) error {
	return e.Transform(in, out, axes, true)
}

// FFT2 computes the forward 2D transform of a rank-2 view over axes [0, 1].
func (e *Engine[T]) FFT2(in, out *ndarray.View[T]) error {
	if err := requireRank2(in, out); err != nil {
		return err
	}

	return e.Transform(in, out, []int{0, 1}, false)
}

// IFFT2 computes the inverse 2D transform of a rank-2 view over axes [1, 0].
func (e *Engine[T]) IFFT2(in, out *ndarray.View[T]) error {
	if err := requireRank2(in, out); err != nil {
		return err
	}

	return e.Transform(in, out, []int{1, 0}, true)
}

// Transform is the general entry point behind the other methods: it
// validates the views and axes and then transforms along each axis in order.
func (e *Engine[T]) Transform(in, out *ndarray.View[T], axes []int, inverse bool) error {
	if err := validate(in, out, axes); err != nil {
		return err
	}

	r := &run[T]{plans: dft.NewCache(e.planner), norm: e.cfg.Norm}
	return r.separable(in, out, axes, inverse)
}

func requireRank2[T any](in, out *ndarray.View[T]) error {
	if in == nil || out == nil {
		return ErrNilView
	}

	if in.Rank() != 2 {
		return fmt.Errorf("%w: 2D transform of rank %d view", ErrInvalidAxis, in.Rank())
	}

	return nil
}

// validate checks every precondition up front so that no partial result is
// ever written.
func validate[T any](in, out *ndarray.View[T], axes []int) error {
	if in == nil || out == nil {
		return ErrNilView
	}

	if !in.SameShape(out) {
		return fmt.Errorf("%w: input %v, output %v", ErrShapeMismatch, in.Shape(), out.Shape())
	}

	if len(axes) == 0 {
		return ErrEmptyAxes
	}

	for _, axis := range axes {
		if axis < 0 || axis >= in.Rank() {
			return fmt.Errorf("%w: axis %d for rank %d", ErrInvalidAxis, axis, in.Rank())
		}
	}

	return nil
}
