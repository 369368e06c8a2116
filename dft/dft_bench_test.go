package dft

import (
	"fmt"
	"testing"

	"github.com/astrojhgu/fftn/internal/testutil"
)

func BenchmarkForward(b *testing.B) {
	for name, planner := range planners128() {
		for _, n := range []int{64, 360, 1024} {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				tr, err := planner(n)
				if err != nil {
					b.Fatal(err)
				}

				src := testutil.DeterministicNoise(1, 1, n)
				dst := make([]complex128, n)

				b.ReportAllocs()
				b.ResetTimer()

				for b.Loop() {
					_ = tr.Forward(dst, src)
				}
			})
		}
	}
}
