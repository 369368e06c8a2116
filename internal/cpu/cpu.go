// Package cpu reports the SIMD extensions of the running processor.
//
// The transform backends in this module (algo-fft kernels, algo-vecmath
// scaling) dispatch on these features internally; this package only exposes
// them so that backend selection and diagnostics can see the same picture.
// Detection runs once and is cached.
package cpu

import (
	"strings"
	"sync"
)

// Features describes the SIMD capabilities relevant to kernel selection.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detectOnce sync.Once
	detected   Features
)

// DetectFeatures returns the features of the current processor.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})

	return detected
}

// HasSIMD reports whether f includes any vector extension the FFT kernels
// can use.
func HasSIMD(f Features) bool {
	return f.HasAVX2 || f.HasAVX512 || f.HasNEON
}

// String lists the detected extensions, e.g. "amd64: SSE2 AVX AVX2".
func (f Features) String() string {
	var names []string
	for _, ext := range []struct {
		ok   bool
		name string
	}{
		{f.HasSSE2, "SSE2"},
		{f.HasAVX, "AVX"},
		{f.HasAVX2, "AVX2"},
		{f.HasAVX512, "AVX-512"},
		{f.HasNEON, "NEON"},
	} {
		if ext.ok {
			names = append(names, ext.name)
		}
	}

	if len(names) == 0 {
		names = append(names, "none")
	}

	return f.Architecture + ": " + strings.Join(names, " ")
}
