//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// NEON (ASIMD) is mandatory on ARMv8 but is still read from x/sys/cpu.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
