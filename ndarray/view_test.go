package ndarray_test

import (
	"testing"

	"github.com/astrojhgu/fftn/ndarray"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestFromSlice_RowMajor(t *testing.T) {
	v, err := ndarray.FromSlice(seq(24), 2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, v.Rank())
	require.Equal(t, []int{2, 3, 4}, v.Shape())
	require.Equal(t, []int{12, 4, 1}, v.Strides())
	require.Equal(t, 24, v.Size())
	require.True(t, v.IsContiguous())
	require.Equal(t, 1*12+2*4+3, v.At(1, 2, 3))

	v.Set(-1, 0, 1, 2)
	require.Equal(t, -1, v.Data()[6])
}

func TestFromSlice_Errors(t *testing.T) {
	_, err := ndarray.FromSlice(seq(5), 2, 3)
	require.ErrorIs(t, err, ndarray.ErrSizeMismatch)

	_, err = ndarray.FromSlice(seq(0), -1, 3)
	require.ErrorIs(t, err, ndarray.ErrInvalidShape)
}

func TestFromStrided_Validation(t *testing.T) {
	data := seq(10)

	_, err := ndarray.FromStrided(data, 0, []int{2, 3}, []int{1})
	require.ErrorIs(t, err, ndarray.ErrRankMismatch)

	_, err = ndarray.FromStrided(data, 0, []int{2, 6}, []int{5, 1})
	require.ErrorIs(t, err, ndarray.ErrOutOfBounds)

	_, err = ndarray.FromStrided(data, 0, []int{2, 3}, []int{-1, 1})
	require.ErrorIs(t, err, ndarray.ErrInvalidShape)

	_, err = ndarray.FromStrided(data, -2, []int{2}, []int{1})
	require.ErrorIs(t, err, ndarray.ErrInvalidShape)

	// Column-major 2x5 over the same storage.
	v, err := ndarray.FromStrided(data, 0, []int{2, 5}, []int{1, 2})
	require.NoError(t, err)
	require.False(t, v.IsContiguous())
	require.Equal(t, 7, v.At(1, 3))
}

func TestSwapAxes_MetadataOnly(t *testing.T) {
	data := seq(6)
	v, err := ndarray.FromSlice(data, 2, 3)
	require.NoError(t, err)

	v.SwapAxes(0, 1)
	require.Equal(t, []int{3, 2}, v.Shape())
	require.Equal(t, []int{1, 3}, v.Strides())
	require.Equal(t, 5, v.At(2, 1))
	require.Equal(t, seq(6), data)

	v.SwapAxes(1, 0)
	require.Equal(t, []int{2, 3}, v.Shape())
	require.Equal(t, 5, v.At(1, 2))
}

func TestPermute(t *testing.T) {
	v, err := ndarray.FromSlice(seq(24), 2, 3, 4)
	require.NoError(t, err)

	p, err := v.Permute(2, 0, 1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 2, 3}, p.Shape())
	require.Equal(t, v.At(1, 2, 3), p.At(3, 1, 2))

	_, err = v.Permute(0, 0, 1)
	require.ErrorIs(t, err, ndarray.ErrInvalidAxis)

	_, err = v.Permute(0, 1)
	require.ErrorIs(t, err, ndarray.ErrInvalidAxis)

	_, err = v.Permute(0, 1, 3)
	require.ErrorIs(t, err, ndarray.ErrInvalidAxis)
}

func TestLanes_Enumeration(t *testing.T) {
	v, err := ndarray.FromSlice(seq(24), 2, 3, 4)
	require.NoError(t, err)

	tests := []struct {
		axis   int
		lanes  int
		length int
		stride int
	}{
		{axis: 0, lanes: 12, length: 2, stride: 12},
		{axis: 1, lanes: 8, length: 3, stride: 4},
		{axis: 2, lanes: 6, length: 4, stride: 1},
	}

	for _, tc := range tests {
		require.Equal(t, tc.lanes, v.NumLanes(tc.axis))

		seen := make(map[int]int)
		for k := range v.NumLanes(tc.axis) {
			lane := v.Lane(tc.axis, k)
			require.Equal(t, tc.length, lane.Len())
			require.Equal(t, tc.stride, lane.Stride())
			for i := range lane.Len() {
				seen[lane.At(i)]++
			}
		}

		// Every element belongs to exactly one lane.
		require.Len(t, seen, 24)
		for _, n := range seen {
			require.Equal(t, 1, n)
		}
	}

	// Remaining axes run in row-major order: lane 5 along axis 1 fixes
	// (i0, i2) = (1, 1).
	lane := v.Lane(1, 5)
	require.Equal(t, v.At(1, 0, 1), lane.At(0))
	require.Equal(t, v.At(1, 2, 1), lane.At(2))
}

func TestLanes_MatchAcrossLayouts(t *testing.T) {
	dense, err := ndarray.FromSlice(seq(6), 2, 3)
	require.NoError(t, err)

	// Same logical array stored column-major.
	colMajor, err := ndarray.FromStrided([]int{0, 3, 1, 4, 2, 5}, 0, []int{2, 3}, []int{1, 2})
	require.NoError(t, err)

	for axis := range 2 {
		for k := range dense.NumLanes(axis) {
			a := dense.Lane(axis, k)
			b := colMajor.Lane(axis, k)
			for i := range a.Len() {
				require.Equal(t, a.At(i), b.At(i))
			}
		}
	}
}

func TestLane_GatherScatter(t *testing.T) {
	data := seq(12)
	v, err := ndarray.FromSlice(data, 3, 4)
	require.NoError(t, err)

	col := v.Lane(0, 2)
	require.False(t, col.Contiguous())
	require.Panics(t, func() { col.Slice() })

	buf := make([]int, 3)
	col.Gather(buf)
	require.Equal(t, []int{2, 6, 10}, buf)

	col.Scatter([]int{-1, -2, -3})
	require.Equal(t, -2, v.At(1, 2))

	row := v.Lane(1, 1)
	require.True(t, row.Contiguous())
	require.Equal(t, []int{4, 5, 6, 7}, row.Slice())
}

func TestCopyFromFillClone(t *testing.T) {
	src, err := ndarray.FromSlice(seq(6), 2, 3)
	require.NoError(t, err)

	transposed, err := src.Permute(1, 0)
	require.NoError(t, err)

	dst := ndarray.New[int](3, 2)
	require.NoError(t, dst.CopyFrom(transposed))
	require.Equal(t, []int{0, 3, 1, 4, 2, 5}, dst.Flatten())

	require.ErrorIs(t, dst.CopyFrom(src), ndarray.ErrShapeMismatch)

	dst.Fill(7)
	require.Equal(t, []int{7, 7, 7, 7, 7, 7}, dst.Data())

	c := transposed.Clone()
	require.True(t, c.IsContiguous())
	require.Equal(t, transposed.Flatten(), c.Data())
}

func TestZeroSizedAndScalarViews(t *testing.T) {
	empty := ndarray.New[int](3, 0)
	require.Equal(t, 0, empty.Size())
	require.Equal(t, 0, empty.NumLanes(0))
	require.Equal(t, 3, empty.NumLanes(1))
	require.Equal(t, 0, empty.Lane(1, 2).Len())
	require.Empty(t, empty.Flatten())

	scalar := ndarray.New[int]()
	require.Equal(t, 0, scalar.Rank())
	require.Equal(t, 1, scalar.Size())
	scalar.Fill(4)
	require.Equal(t, 4, scalar.At())
}

func TestAt_PanicsOnBadIndex(t *testing.T) {
	v := ndarray.New[int](2, 2)
	require.Panics(t, func() { v.At(2, 0) })
	require.Panics(t, func() { v.At(0) })
	require.Panics(t, func() { v.Lane(0, 2) })
}
