package spectrum_test

import (
	"fmt"

	"github.com/astrojhgu/fftn/ndarray"
	"github.com/astrojhgu/fftn/spectrum"
)

func ExampleMagnitude() {
	bins, _ := ndarray.FromSlice([]complex128{1, 1i, -1, -1i}, 2, 2)
	mag := ndarray.New[float64](2, 2)
	_ = spectrum.Magnitude(mag, bins)
	fmt.Printf("%.1f %.1f %.1f %.1f\n", mag.At(0, 0), mag.At(0, 1), mag.At(1, 0), mag.At(1, 1))
	// Output:
	// 1.0 1.0 1.0 1.0
}
