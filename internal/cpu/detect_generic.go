//go:build !amd64 && !arm64

package cpu

import "runtime"

// Other architectures run the pure Go kernels only.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
