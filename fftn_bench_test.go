package fftn_test

import (
	"fmt"
	"testing"

	"github.com/astrojhgu/fftn"
	"github.com/astrojhgu/fftn/dft"
	"github.com/astrojhgu/fftn/internal/testutil"
	"github.com/astrojhgu/fftn/ndarray"
)

func BenchmarkFFTND(b *testing.B) {
	shapes := [][]int{{64, 64}, {256, 256}, {32, 32, 32}, {60, 45, 14}}

	for _, backend := range []dft.Backend{dft.BackendAlgoFFT, dft.BackendGonum} {
		e, err := fftn.NewEngine[complex128](fftn.WithBackend(backend))
		if err != nil {
			b.Fatal(err)
		}

		for _, shape := range shapes {
			b.Run(fmt.Sprintf("%s/%v", backend, shape), func(b *testing.B) {
				x := testutil.NoiseView(1, shape...)
				in := x.Clone()
				out := ndarray.New[complex128](shape...)

				axes := make([]int, len(shape))
				for i := range axes {
					axes[i] = i
				}

				b.SetBytes(int64(16 * x.Size()))
				b.ReportAllocs()
				b.ResetTimer()

				for b.Loop() {
					if err := e.FFTND(in, out, axes...); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkFFTNStridedAxis(b *testing.B) {
	x := testutil.NoiseView(2, 256, 256)
	out := ndarray.New[complex128](256, 256)

	for axis := range 2 {
		b.Run(fmt.Sprintf("axis=%d", axis), func(b *testing.B) {
			b.ReportAllocs()

			for b.Loop() {
				if err := fftn.FFTN(x, out, axis); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
