package fftn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astrojhgu/fftn/ndarray"
)

func reverseLane(dst, src []int) error {
	for i, v := range src {
		dst[len(src)-1-i] = v
	}
	return nil
}

func TestMutateLanesEachAxis(t *testing.T) {
	data := make([]int, 24)
	for i := range data {
		data[i] = i
	}

	for axis := range 3 {
		in, err := ndarray.FromSlice(append([]int(nil), data...), 2, 3, 4)
		require.NoError(t, err)
		out := ndarray.New[int](2, 3, 4)

		require.NoError(t, mutateLanes(in, out, axis, reverseLane))

		// Metadata restored on both views.
		require.Equal(t, []int{2, 3, 4}, in.Shape())
		require.Equal(t, []int{2, 3, 4}, out.Shape())
		require.Equal(t, []int{12, 4, 1}, in.Strides())

		// Input untouched.
		require.Equal(t, data, in.Data())

		idx := []int{1, 2, 3}
		mirrored := append([]int(nil), idx...)
		mirrored[axis] = in.Dim(axis) - 1 - idx[axis]
		require.Equal(t, in.At(mirrored...), out.At(idx...), "axis %d", axis)
	}
}

func TestMutateLanesStridedOutput(t *testing.T) {
	in, err := ndarray.FromSlice([]int{0, 1, 2, 3, 4, 5}, 2, 3)
	require.NoError(t, err)

	storage := make([]int, 6)
	out, err := ndarray.FromStrided(storage, 0, []int{2, 3}, []int{1, 2})
	require.NoError(t, err)

	require.NoError(t, mutateLanes(in, out, 1, reverseLane))
	require.Equal(t, []int{2, 1, 0, 5, 4, 3}, out.Flatten())
}

func TestMutateLanesSameView(t *testing.T) {
	v, err := ndarray.FromSlice([]int{0, 1, 2, 3, 4, 5}, 2, 3)
	require.NoError(t, err)

	require.NoError(t, mutateLanes(v, v, 1, reverseLane))
	require.Equal(t, []int{2, 1, 0, 5, 4, 3}, v.Data())
	require.Equal(t, []int{2, 3}, v.Shape())

	require.NoError(t, mutateLanes(v, v, 0, reverseLane))
	require.Equal(t, []int{5, 4, 3, 2, 1, 0}, v.Data())
}

func TestMutateLanesPropagatesError(t *testing.T) {
	in := ndarray.New[int](3, 2)
	out := ndarray.New[int](3, 2)
	boom := errors.New("boom")

	calls := 0
	err := mutateLanes(in, out, 1, func(dst, src []int) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})

	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "lane 1")
	require.Equal(t, []int{3, 2}, in.Shape())
}

func TestMutateLanesEmptyAxis(t *testing.T) {
	in := ndarray.New[int](0, 4)
	out := ndarray.New[int](0, 4)

	require.NoError(t, mutateLanes(in, out, 0, func(dst, src []int) error {
		t.Fatal("fn called for empty axis")
		return nil
	}))
	require.NoError(t, mutateLanes(in, out, 1, func(dst, src []int) error {
		t.Fatal("fn called with no lanes")
		return nil
	}))
}

func TestOverlaps(t *testing.T) {
	a := make([]int, 8)
	require.True(t, overlaps(a, a))
	require.True(t, overlaps(a[:3], a[5:]))
	require.False(t, overlaps(a, make([]int, 8)))
	require.False(t, overlaps(a, nil))
}

func TestScaleInPlace(t *testing.T) {
	x := []complex128{1 + 2i, -4i}
	scaleInPlace(x, 0.5)
	require.Equal(t, []complex128{0.5 + 1i, -2i}, x)

	y := []complex64{2, 4 - 8i}
	scaleInPlace(y, 0.25)
	require.Equal(t, []complex64{0.5, 1 - 2i}, y)

	scaleInPlace([]complex128(nil), 3)
}
