package fftn

import (
	"unsafe"

	"github.com/cwbudde/algo-vecmath"

	"github.com/astrojhgu/fftn/dft"
)

// scaleInPlace multiplies every element of x by f. complex128 data is scaled
// as interleaved float64 pairs with the vecmath kernels.
func scaleInPlace[T dft.Complex](x []T, f float64) {
	if f == 1 || len(x) == 0 {
		return
	}

	switch s := any(x).(type) {
	case []complex128:
		flat := unsafe.Slice((*float64)(unsafe.Pointer(&s[0])), 2*len(s))
		vecmath.ScaleBlockInPlace(flat, f)
	case []complex64:
		c := complex64(complex(f, 0))
		for i := range s {
			s[i] *= c
		}
	}
}
