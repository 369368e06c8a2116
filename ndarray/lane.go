package ndarray

// Lane is a 1D strided window: the elements of a view along one axis with
// every other index held fixed. It aliases the view's storage.
type Lane[T any] struct {
	data   []T
	offset int
	stride int
	n      int
}

// Len returns the number of elements in the lane.
func (l Lane[T]) Len() int { return l.n }

// Stride returns the distance in elements between consecutive lane entries.
func (l Lane[T]) Stride() int { return l.stride }

// At returns the i-th element of the lane.
func (l Lane[T]) At(i int) T { return l.data[l.offset+i*l.stride] }

// Set stores val as the i-th element of the lane.
func (l Lane[T]) Set(i int, val T) { l.data[l.offset+i*l.stride] = val }

// Contiguous reports whether the lane occupies adjacent slots of the
// backing slice, so that [Lane.Slice] can expose it directly.
func (l Lane[T]) Contiguous() bool { return l.stride == 1 || l.n <= 1 }

// Slice returns the lane as a sub-slice of the backing storage.
// It panics if the lane is not contiguous.
func (l Lane[T]) Slice() []T {
	if !l.Contiguous() {
		panic("ndarray: Slice on non-contiguous lane")
	}

	if l.n == 0 {
		return nil
	}

	return l.data[l.offset : l.offset+l.n : l.offset+l.n]
}

// Gather copies the lane into dst[:Len()].
func (l Lane[T]) Gather(dst []T) {
	dst = dst[:l.n]
	for i := range dst {
		dst[i] = l.data[l.offset+i*l.stride]
	}
}

// Scatter copies src[:Len()] into the lane.
func (l Lane[T]) Scatter(src []T) {
	src = src[:l.n]
	for i, v := range src {
		l.data[l.offset+i*l.stride] = v
	}
}
