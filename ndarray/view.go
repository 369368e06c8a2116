package ndarray

import (
	"fmt"
	"slices"
)

// View is a strided N-dimensional window onto a flat slice.
//
// The zero value is not usable; construct views with [New], [FromSlice] or
// [FromStrided]. A View is not safe for concurrent mutation.
type View[T any] struct {
	data    []T
	offset  int
	shape   []int
	strides []int
}

// New allocates a zero-filled row-major array of the given shape.
// Negative extents are treated as 0.
func New[T any](shape ...int) *View[T] {
	dims := make([]int, len(shape))
	for i, n := range shape {
		dims[i] = max(n, 0)
	}

	return &View[T]{
		data:    make([]T, elementCount(dims)),
		shape:   dims,
		strides: rowMajorStrides(dims),
	}
}

// FromSlice wraps data as a row-major array without copying.
// Mutations through the view are visible in data and vice versa.
func FromSlice[T any](data []T, shape ...int) (*View[T], error) {
	for _, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("%w: extent %d", ErrInvalidShape, n)
		}
	}

	dims := slices.Clone(shape)
	if n := elementCount(dims); n != len(data) {
		return nil, fmt.Errorf("%w: shape %v needs %d elements, got %d", ErrSizeMismatch, dims, n, len(data))
	}

	return &View[T]{
		data:    data,
		shape:   dims,
		strides: rowMajorStrides(dims),
	}, nil
}

// FromStrided wraps data with an explicit layout: element idx lives at
// data[offset + sum(idx[d]*strides[d])].
//
// Every addressable element must lie inside data. Layouts in which distinct
// indices share storage (for example zero strides) are accepted but must not
// be used as transform outputs.
func FromStrided[T any](data []T, offset int, shape, strides []int) (*View[T], error) {
	if len(shape) != len(strides) {
		return nil, fmt.Errorf("%w: %d extents, %d strides", ErrRankMismatch, len(shape), len(strides))
	}

	if offset < 0 {
		return nil, fmt.Errorf("%w: offset %d", ErrInvalidShape, offset)
	}

	last := offset
	for d := range shape {
		if shape[d] < 0 || strides[d] < 0 {
			return nil, fmt.Errorf("%w: axis %d extent %d stride %d", ErrInvalidShape, d, shape[d], strides[d])
		}

		if shape[d] > 0 {
			last += (shape[d] - 1) * strides[d]
		}
	}

	if elementCount(shape) > 0 && last >= len(data) {
		return nil, fmt.Errorf("%w: last element at %d, data length %d", ErrOutOfBounds, last, len(data))
	}

	if offset > len(data) {
		return nil, fmt.Errorf("%w: offset %d, data length %d", ErrOutOfBounds, offset, len(data))
	}

	return &View[T]{
		data:    data,
		offset:  offset,
		shape:   slices.Clone(shape),
		strides: slices.Clone(strides),
	}, nil
}

// Rank returns the number of axes.
func (v *View[T]) Rank() int { return len(v.shape) }

// Shape returns a copy of the per-axis extents.
func (v *View[T]) Shape() []int { return slices.Clone(v.shape) }

// Strides returns a copy of the per-axis strides in elements.
func (v *View[T]) Strides() []int { return slices.Clone(v.strides) }

// Dim returns the extent of axis.
func (v *View[T]) Dim(axis int) int { return v.shape[axis] }

// Size returns the number of addressable elements.
func (v *View[T]) Size() int { return elementCount(v.shape) }

// Data returns the backing slice.
func (v *View[T]) Data() []T { return v.data }

// SameShape reports whether v and other have identical extents.
func (v *View[T]) SameShape(other *View[T]) bool {
	return slices.Equal(v.shape, other.shape)
}

// IsContiguous reports whether the view is a dense row-major block.
func (v *View[T]) IsContiguous() bool {
	want := rowMajorStrides(v.shape)
	for d := range v.shape {
		if v.shape[d] > 1 && v.strides[d] != want[d] {
			return false
		}
	}

	return true
}

// At returns the element at the multi-index idx.
// It panics if idx has the wrong arity or is out of range.
func (v *View[T]) At(idx ...int) T {
	return v.data[v.index(idx)]
}

// Set stores val at the multi-index idx.
// It panics if idx has the wrong arity or is out of range.
func (v *View[T]) Set(val T, idx ...int) {
	v.data[v.index(idx)] = val
}

func (v *View[T]) index(idx []int) int {
	if len(idx) != len(v.shape) {
		panic(fmt.Sprintf("ndarray: %d indices for rank %d", len(idx), len(v.shape)))
	}

	pos := v.offset
	for d, i := range idx {
		if i < 0 || i >= v.shape[d] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %d with extent %d", i, d, v.shape[d]))
		}

		pos += i * v.strides[d]
	}

	return pos
}

// SwapAxes exchanges axes i and j in place. Only metadata changes; the
// backing data is untouched. It panics if either axis is out of range.
func (v *View[T]) SwapAxes(i, j int) {
	v.shape[i], v.shape[j] = v.shape[j], v.shape[i]
	v.strides[i], v.strides[j] = v.strides[j], v.strides[i]
}

// Permute returns a view whose axis d is axis axes[d] of v. The result
// shares storage with v.
func (v *View[T]) Permute(axes ...int) (*View[T], error) {
	if len(axes) != len(v.shape) {
		return nil, fmt.Errorf("%w: %d axes for rank %d", ErrInvalidAxis, len(axes), len(v.shape))
	}

	seen := make([]bool, len(axes))
	shape := make([]int, len(axes))
	strides := make([]int, len(axes))

	for d, a := range axes {
		if a < 0 || a >= len(v.shape) {
			return nil, fmt.Errorf("%w: axis %d out of range for rank %d", ErrInvalidAxis, a, len(v.shape))
		}

		if seen[a] {
			return nil, fmt.Errorf("%w: duplicate axis %d", ErrInvalidAxis, a)
		}

		seen[a] = true
		shape[d] = v.shape[a]
		strides[d] = v.strides[a]
	}

	return &View[T]{data: v.data, offset: v.offset, shape: shape, strides: strides}, nil
}

// NumLanes returns how many lanes run along axis: the product of every
// other extent.
func (v *View[T]) NumLanes(axis int) int {
	_ = v.shape[axis]

	n := 1
	for d, e := range v.shape {
		if d != axis {
			n *= e
		}
	}

	return n
}

// Lane returns the k-th lane along axis. The remaining axes are enumerated
// in row-major order, the last one varying fastest.
func (v *View[T]) Lane(axis, k int) Lane[T] {
	if k < 0 || k >= v.NumLanes(axis) {
		panic(fmt.Sprintf("ndarray: lane %d out of range for axis %d", k, axis))
	}

	pos := v.offset
	for d := len(v.shape) - 1; d >= 0; d-- {
		if d == axis {
			continue
		}

		pos += (k % v.shape[d]) * v.strides[d]
		k /= v.shape[d]
	}

	return Lane[T]{data: v.data, offset: pos, stride: v.strides[axis], n: v.shape[axis]}
}

// CopyFrom copies every element of src into v by multi-index.
func (v *View[T]) CopyFrom(src *View[T]) error {
	if !v.SameShape(src) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, v.shape, src.shape)
	}

	if len(v.shape) == 0 {
		v.data[v.offset] = src.data[src.offset]
		return nil
	}

	last := len(v.shape) - 1
	for k := range v.NumLanes(last) {
		dst := v.Lane(last, k)
		s := src.Lane(last, k)

		if dst.Contiguous() && s.Contiguous() {
			copy(dst.Slice(), s.Slice())
			continue
		}

		for i := range dst.n {
			dst.Set(i, s.At(i))
		}
	}

	return nil
}

// Fill sets every element to val.
func (v *View[T]) Fill(val T) {
	if len(v.shape) == 0 {
		v.data[v.offset] = val
		return
	}

	last := len(v.shape) - 1
	for k := range v.NumLanes(last) {
		lane := v.Lane(last, k)
		for i := range lane.n {
			lane.Set(i, val)
		}
	}
}

// Clone returns a dense row-major copy of v.
func (v *View[T]) Clone() *View[T] {
	c := New[T](v.shape...)
	_ = c.CopyFrom(v)
	return c
}

// Flatten returns the elements of v in row-major order as a new slice.
func (v *View[T]) Flatten() []T {
	return v.Clone().data
}

func elementCount(shape []int) int {
	n := 1
	for _, e := range shape {
		n *= e
	}

	return n
}

// rowMajorStrides returns C-order strides: the last axis is contiguous.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))

	s := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = s
		s *= shape[d]
	}

	return strides
}
