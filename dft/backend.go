package dft

import (
	"fmt"
	"strings"

	"github.com/astrojhgu/fftn/internal/cpu"
)

// Backend selects a Transform implementation.
type Backend int

const (
	// BackendAuto picks algo-fft when SIMD kernels are available and gonum
	// (complex128) otherwise.
	BackendAuto Backend = iota

	// BackendAlgoFFT uses github.com/MeKo-Christian/algo-fft.
	BackendAlgoFFT

	// BackendGonum uses gonum.org/v1/gonum/dsp/fourier. complex128 only.
	BackendGonum

	// BackendDirect uses the O(n^2) reference transform.
	BackendDirect
)

var backendNames = map[Backend]string{
	BackendAuto:    "auto",
	BackendAlgoFFT: "algofft",
	BackendGonum:   "gonum",
	BackendDirect:  "direct",
}

// Backends lists every backend in declaration order.
func Backends() []Backend {
	return []Backend{BackendAuto, BackendAlgoFFT, BackendGonum, BackendDirect}
}

// String returns the backend's name as accepted by ParseBackend.
func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}

	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend resolves a backend name (case-insensitive).
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range backendNames {
		if n == name {
			return b, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// PlannerFor returns the Planner implementing b for element type T.
func PlannerFor[T Complex](b Backend) (Planner[T], error) {
	var zero T
	_, double := any(zero).(complex128)

	if b == BackendAuto {
		b = resolveAuto(double, cpu.DetectFeatures())
	}

	switch b {
	case BackendAlgoFFT:
		return NewAlgoFFT[T], nil
	case BackendGonum:
		if !double {
			return nil, fmt.Errorf("%w: %s requires complex128", ErrUnsupportedPrecision, b)
		}

		return any(Planner[complex128](NewGonum)).(Planner[T]), nil
	case BackendDirect:
		return NewDirect[T], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, b)
	}
}

func resolveAuto(double bool, features cpu.Features) Backend {
	if cpu.HasSIMD(features) || !double {
		return BackendAlgoFFT
	}

	return BackendGonum
}
