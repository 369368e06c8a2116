// Package ndarray provides a strided N-dimensional view over caller-owned
// storage.
//
// A [View] never owns its data: it describes how a flat slice is addressed as
// an N-dimensional array through a shape, per-axis strides (in elements) and
// a base offset. Relabeling axes with [View.SwapAxes] or [View.Permute] only
// touches that metadata, so a transposed view costs O(rank) regardless of the
// array size.
//
// Lanes are the 1D slices obtained by fixing every index except one:
//
//	v, _ := ndarray.FromSlice(data, 4, 8)
//	for k := range v.NumLanes(1) {
//		lane := v.Lane(1, k) // row k, 8 elements, stride 1
//		_ = lane
//	}
//
// Two views of equal shape enumerate their lanes in the same order, whatever
// their strides, which lets callers pair input and output lanes by index.
package ndarray
